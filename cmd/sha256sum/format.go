package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/jstripli/sha256"
	"github.com/jstripli/sha256/internal/utils"
)

// hexDigest renders a digest as 64 lowercase hex characters.
func hexDigest(words [8]uint32) string {
	var buf [sha256.Size]byte
	utils.WordsToBytes(&words, buf[:])
	return hex.EncodeToString(buf[:])
}

// wordsDigest renders a digest as "0x " followed by the eight words.
func wordsDigest(words [8]uint32) string {
	var b strings.Builder
	b.WriteString("0x ")
	for _, w := range words {
		fmt.Fprintf(&b, "%08x", w)
	}
	return b.String()
}
