package board

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/cpu"
)

// CPUFeatures reports which of the three operations behind the intrinsic scan
// path run as a single instruction on this machine.
type CPUFeatures struct {
	Arch          string
	PopCount      bool // POPCNT on x86, CNT on arm64
	TrailingZeros bool // TZCNT (BMI1) on x86, RBIT+CLZ on arm64
	LeadingZeros  bool // LZCNT on x86, CLZ on arm64
}

// DetectCPU reports the bit-scan instructions available on the running CPU.
func DetectCPU() CPUFeatures {
	f := CPUFeatures{Arch: runtime.GOARCH}
	switch runtime.GOARCH {
	case "amd64", "386":
		f.PopCount = cpu.X86.HasPOPCNT
		f.TrailingZeros = cpu.X86.HasBMI1
		// x/sys/cpu does not expose the ABM bit; LZCNT shipped with or
		// before BMI1 on every x86 line.
		f.LeadingZeros = cpu.X86.HasBMI1
	case "arm64":
		f.PopCount = cpu.ARM64.HasASIMD
		f.TrailingZeros = true
		f.LeadingZeros = true
	}
	return f
}

// Hardware reports whether all intrinsic scans run as single instructions.
func (f CPUFeatures) Hardware() bool {
	return f.PopCount && f.TrailingZeros && f.LeadingZeros
}

func (f CPUFeatures) String() string {
	return fmt.Sprintf("%s popcount=%t tzcnt=%t lzcnt=%t", f.Arch, f.PopCount, f.TrailingZeros, f.LeadingZeros)
}
