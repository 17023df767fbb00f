package catalog

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// Category is the single faceting label carried by every record.
type Category string

// CategoryAll selects every category; filtering by it is a no-op.
const CategoryAll Category = "all"

// ContentRecord is one page of the guide as the search engine sees it.
// Records are catalog-sourced and immutable for the session.
type ContentRecord struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Keywords    []string `json:"keywords,omitempty"`

	// Image and Icon are presentation-only and opaque to the search core.
	Image string `json:"image,omitempty"`
	Icon  string `json:"icon,omitempty"`
}

// Fingerprint is a deterministic 64-bit digest of catalog content.
type Fingerprint uint64

// fingerprintFromContent hashes text with BLAKE2b, so identical content
// always produces the identical fingerprint.
func fingerprintFromContent(text []byte) Fingerprint {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write(text)
	sum := h.Sum(nil)
	return Fingerprint(binary.LittleEndian.Uint64(sum))
}
