package consts

import (
	"golang.org/x/sys/cpu"
)

// These are reported next to throughput numbers. The compression code is
// pure Go on every platform and does not branch on them.
var (
	HasAVX2 = cpu.X86.HasAVX2
	HasBMI2 = cpu.X86.HasBMI2
	HasSHA2 = cpu.ARM64.HasSHA2
)

// Features returns the names of the detected features that matter to the
// rotate and add heavy round function.
func Features() []string {
	var out []string
	if HasAVX2 {
		out = append(out, "avx2")
	}
	if HasBMI2 {
		out = append(out, "bmi2")
	}
	if HasSHA2 {
		out = append(out, "sha2")
	}
	return out
}
