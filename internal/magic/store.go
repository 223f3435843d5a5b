package magic

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/dgraph-io/badger/v4"
	"github.com/dustin/go-humanize"
	"github.com/go-logr/logr"
	"github.com/klauspost/compress/zstd"

	"github.com/duyanhHSGS/Carolyna/internal/board"
)

const formatVersion = 1

// Storage keys
const (
	keyMeta     = "magic/v1/meta"
	entryPrefix = "magic/v1/"
)

var (
	// ErrNotStored is returned by Load when the store holds no tables.
	ErrNotStored = errors.New("magic: tables not stored")
	// ErrCorrupt is returned by Load when stored tables fail their checksum or
	// cannot be decoded.
	ErrCorrupt = errors.New("magic: stored tables corrupt")
)

// storeMeta is the JSON record written next to the entries.
type storeMeta struct {
	Version     int       `json:"version"`
	Entries     int       `json:"entries"`
	RawBytes    uint64    `json:"raw_bytes"`
	StoredBytes uint64    `json:"stored_bytes"`
	SavedAt     time.Time `json:"saved_at"`
}

// Store persists magic tables in BadgerDB. Entries are stored zstd-compressed
// behind an xxhash checksum of their raw encoding.
type Store struct {
	db  *badger.DB
	log logr.Logger
	enc *zstd.Encoder
	dec *zstd.Decoder
}

// OpenStore opens (or creates) a store in dir. An empty dir keeps the store
// in memory.
func OpenStore(dir string, log logr.Logger) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts = opts.WithLogger(badgerLogger{log: log.WithName("badger")})

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open magic store: %w", err)
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		db.Close()
		return nil, err
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		enc.Close()
		db.Close()
		return nil, err
	}

	return &Store{db: db, log: log, enc: enc, dec: dec}, nil
}

// Close closes the database
func (s *Store) Close() error {
	s.dec.Close()
	encErr := s.enc.Close()
	if err := s.db.Close(); err != nil {
		return err
	}
	return encErr
}

func entryKey(sl Slider, sq board.Square) []byte {
	return []byte(fmt.Sprintf("%s%s/%02d", entryPrefix, sl, uint8(sq)))
}

// Save writes every entry and the meta record in one transaction.
func (s *Store) Save(t *Tables) error {
	meta := storeMeta{Version: formatVersion, SavedAt: time.Now()}

	err := s.db.Update(func(txn *badger.Txn) error {
		for _, sl := range Sliders {
			entries := t.Entries(sl)
			for sq := board.A1; sq <= board.H8; sq++ {
				raw := encodeEntry(&entries[sq])
				val := binary.LittleEndian.AppendUint64(nil, xxhash.Sum64(raw))
				val = s.enc.EncodeAll(raw, val)
				if err := txn.Set(entryKey(sl, sq), val); err != nil {
					return err
				}
				meta.Entries++
				meta.RawBytes += uint64(len(raw))
				meta.StoredBytes += uint64(len(val))
			}
		}

		data, err := json.Marshal(meta)
		if err != nil {
			return err
		}
		return txn.Set([]byte(keyMeta), data)
	})
	if err != nil {
		return fmt.Errorf("save magic tables: %w", err)
	}

	s.log.V(1).Info("magic tables saved",
		"entries", meta.Entries,
		"raw", humanize.Bytes(meta.RawBytes),
		"stored", humanize.Bytes(meta.StoredBytes))
	return nil
}

// Load reads a full table set. It returns ErrNotStored when nothing was saved
// and ErrCorrupt when any part of the stored data is unusable.
func (s *Store) Load() (*Tables, error) {
	t := &Tables{}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyMeta))
		if err == badger.ErrKeyNotFound {
			return ErrNotStored
		}
		if err != nil {
			return err
		}

		var meta storeMeta
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &meta)
		}); err != nil {
			return fmt.Errorf("%w: meta: %v", ErrCorrupt, err)
		}
		if meta.Version != formatVersion || meta.Entries != 2*64 {
			return fmt.Errorf("%w: version %d with %d entries", ErrCorrupt, meta.Version, meta.Entries)
		}

		for _, sl := range Sliders {
			entries := t.Entries(sl)
			for sq := board.A1; sq <= board.H8; sq++ {
				item, err := txn.Get(entryKey(sl, sq))
				if err == badger.ErrKeyNotFound {
					return fmt.Errorf("%w: %s on %s missing", ErrCorrupt, sl, sq)
				}
				if err != nil {
					return err
				}
				if err := item.Value(func(val []byte) error {
					e, err := s.decodeValue(val)
					if err != nil {
						return fmt.Errorf("%w: %s on %s: %v", ErrCorrupt, sl, sq, err)
					}
					entries[sq] = e
					return nil
				}); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return t, nil
}

func (s *Store) decodeValue(val []byte) (Entry, error) {
	if len(val) < 8 {
		return Entry{}, errors.New("short value")
	}
	sum := binary.LittleEndian.Uint64(val)
	raw, err := s.dec.DecodeAll(val[8:], nil)
	if err != nil {
		return Entry{}, err
	}
	if xxhash.Sum64(raw) != sum {
		return Entry{}, errors.New("checksum mismatch")
	}
	return decodeEntry(raw)
}

// mask, magic, shift, slot count
const entryHeaderSize = 8 + 8 + 1 + 4

func encodeEntry(e *Entry) []byte {
	buf := make([]byte, 0, entryHeaderSize+8*len(e.Table))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(e.Mask))
	buf = binary.LittleEndian.AppendUint64(buf, e.Magic)
	buf = append(buf, e.Shift)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(e.Table)))
	for _, a := range e.Table {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(a))
	}
	return buf
}

func decodeEntry(raw []byte) (Entry, error) {
	if len(raw) < entryHeaderSize {
		return Entry{}, errors.New("short entry")
	}
	e := Entry{
		Mask:  board.Bitboard(binary.LittleEndian.Uint64(raw[0:])),
		Magic: binary.LittleEndian.Uint64(raw[8:]),
		Shift: raw[16],
	}
	n := int(binary.LittleEndian.Uint32(raw[17:]))
	if e.Shift < 64-20 || e.Shift > 63 || n != 1<<(64-e.Shift) {
		return Entry{}, fmt.Errorf("bad shape: shift %d, %d slots", e.Shift, n)
	}
	if len(raw) != entryHeaderSize+8*n {
		return Entry{}, fmt.Errorf("entry is %d bytes, want %d", len(raw), entryHeaderSize+8*n)
	}

	e.Table = make([]board.Bitboard, n)
	body := raw[entryHeaderSize:]
	for i := range e.Table {
		e.Table[i] = board.Bitboard(binary.LittleEndian.Uint64(body[8*i:]))
	}
	return e, nil
}

// LoadOrBuild returns the stored tables, or builds, validates and stores a
// fresh set when the store is empty, corrupt or holds tables that fail
// Validate (for example ones saved with different multipliers).
func LoadOrBuild(ctx context.Context, s *Store, log logr.Logger) (*Tables, error) {
	t, err := s.Load()
	if err == nil {
		err = Validate(ctx, t)
		if err == nil {
			log.V(1).Info("magic tables loaded", "size", humanize.Bytes(t.Bytes()))
			return t, nil
		}
		if ctx.Err() != nil {
			return nil, err
		}
		err = fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	switch {
	case errors.Is(err, ErrNotStored):
		log.Info("magic tables not stored yet, building")
	case errors.Is(err, ErrCorrupt):
		log.Error(err, "discarding stored magic tables, rebuilding")
	default:
		return nil, fmt.Errorf("load magic tables: %w", err)
	}

	return Rebuild(ctx, s, log)
}

// Rebuild builds and validates a new table set and replaces the stored one.
// A failed save is logged; the tables are still returned.
func Rebuild(ctx context.Context, s *Store, log logr.Logger) (*Tables, error) {
	start := time.Now()
	t, err := Build(ctx)
	if err != nil {
		return nil, err
	}
	if err := Validate(ctx, t); err != nil {
		return nil, fmt.Errorf("validate magic tables: %w", err)
	}
	log.Info("magic tables built", "size", humanize.Bytes(t.Bytes()), "elapsed", time.Since(start))

	if err := s.Save(t); err != nil {
		log.Error(err, "magic tables not stored, next run rebuilds them")
	}
	return t, nil
}
