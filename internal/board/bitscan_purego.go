//go:build purego

package board

var activeScanner = Portable

func lsb64(b uint64) int {
	i := 0
	for b&1 == 0 {
		b >>= 1
		i++
	}
	return i
}

func msb64(b uint64) int {
	i := 63
	for (b>>uint(i))&1 == 0 {
		i--
	}
	return i
}

func popCount64(b uint64) int {
	n := 0
	for b != 0 {
		b &= b - 1
		n++
	}
	return n
}
