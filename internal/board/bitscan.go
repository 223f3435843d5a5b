package board

import "math/bits"

// BitScanner is one implementation of the bit-scan primitives.
// Every implementation returns 64 from LSB and MSB when the input is zero.
type BitScanner interface {
	Name() string
	LSB(b uint64) int
	MSB(b uint64) int
	PopCount(b uint64) int
}

// Available scan strategies. They must agree on every input.
var (
	Intrinsic BitScanner = intrinsicScanner{}
	DeBruijn  BitScanner = deBruijnScanner{}
	Portable  BitScanner = portableScanner{}
)

// Scanners lists every strategy compiled into the binary.
func Scanners() []BitScanner {
	return []BitScanner{Intrinsic, DeBruijn, Portable}
}

// ActiveScanner returns the strategy behind Bitboard.LSB, MSB, PopCount and PopLSB.
func ActiveScanner() BitScanner {
	return activeScanner
}

// intrinsicScanner relies on math/bits, which the compiler lowers to
// TZCNT/BSF, LZCNT/BSR and POPCNT on amd64 and RBIT+CLZ/CNT on arm64.
type intrinsicScanner struct{}

func (intrinsicScanner) Name() string { return "intrinsic" }

func (intrinsicScanner) LSB(b uint64) int {
	return bits.TrailingZeros64(b)
}

func (intrinsicScanner) MSB(b uint64) int {
	if b == 0 {
		return 64
	}
	return 63 - bits.LeadingZeros64(b)
}

func (intrinsicScanner) PopCount(b uint64) int {
	return bits.OnesCount64(b)
}

// https://www.chessprogramming.org/BitScan#De_Bruijn_Multiplication
const deBruijn64 = 0x03f79d71b4cb0a89

var deBruijnIndex [64]int

func init() {
	for sq := 0; sq < 64; sq++ {
		b := uint64(1) << uint(sq)
		deBruijnIndex[(((b-1)^b)*deBruijn64)>>58] = sq
	}
}

type deBruijnScanner struct{}

func (deBruijnScanner) Name() string { return "debruijn" }

func (deBruijnScanner) LSB(b uint64) int {
	if b == 0 {
		return 64
	}
	return deBruijnIndex[(((b-1)^b)*deBruijn64)>>58]
}

func (deBruijnScanner) MSB(b uint64) int {
	if b == 0 {
		return 64
	}
	b |= b >> 1
	b |= b >> 2
	b |= b >> 4
	b |= b >> 8
	b |= b >> 16
	b |= b >> 32
	return deBruijnIndex[(b*deBruijn64)>>58]
}

func (deBruijnScanner) PopCount(b uint64) int {
	b -= (b >> 1) & 0x5555555555555555
	b = ((b >> 2) & 0x3333333333333333) + (b & 0x3333333333333333)
	b = ((b >> 4) + b) & 0x0F0F0F0F0F0F0F0F
	return int((b * 0x0101010101010101) >> 56)
}

type portableScanner struct{}

func (portableScanner) Name() string { return "portable" }

func (portableScanner) LSB(b uint64) int {
	if b == 0 {
		return 64
	}
	i := 0
	for b&1 == 0 {
		b >>= 1
		i++
	}
	return i
}

func (portableScanner) MSB(b uint64) int {
	if b == 0 {
		return 64
	}
	i := 63
	for (b>>uint(i))&1 == 0 {
		i--
	}
	return i
}

func (portableScanner) PopCount(b uint64) int {
	n := 0
	for b != 0 {
		b &= b - 1
		n++
	}
	return n
}
