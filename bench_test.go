package sha256

import (
	"fmt"
	"testing"
)

func BenchmarkDigest(b *testing.B) {
	sizes := []int64{0, 16, 55, 56, 64, 128, 1024, 8 * 1024, 64 * 1024}

	for _, s := range strategies {
		for _, size := range sizes {
			s, size := s, size
			input := make([]byte, size)

			b.Run(fmt.Sprintf("%s/%d", s, size), func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(size)

				for i := 0; i < b.N; i++ {
					_ = s.Digest(input)
				}
			})
		}
	}
}

func BenchmarkSum256(b *testing.B) {
	input := make([]byte, 1024)

	b.ReportAllocs()
	b.SetBytes(int64(len(input)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = Sum256(input)
	}
}
