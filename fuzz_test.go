package sha256

import (
	stdsha256 "crypto/sha256"
	"testing"
)

func FuzzDigest(f *testing.F) {
	for _, tv := range vectors {
		f.Add(tv.input())
	}
	f.Add(make([]byte, 56))
	f.Add(make([]byte, 64))

	f.Fuzz(func(t *testing.T, data []byte) {
		v1 := Digest(data)
		v2 := Reference.Digest(data)
		if v1 != v2 {
			t.Fatalf("unrolled: %08x, reference: %08x", v1, v2)
		}

		s1 := Sum256(data)
		s2 := stdsha256.Sum256(data)
		if s1 != s2 {
			t.Fatalf("got: %x, want: %x", s1, s2)
		}
	})
}
