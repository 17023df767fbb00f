package badger

import "encoding/binary"

// Key prefix for catalog records.
const catalogRecordPrefix = "guiderec"

// makeCatalogRecordKey generates a key for a catalog record at the given
// curated position. The ordinal is written BigEndian so lexicographic key
// order equals catalog order during iteration.
func makeCatalogRecordKey(ordinal uint32) []byte {
	prefix := catalogRecordPrefix + ":"
	buf := make([]byte, len(prefix)+4)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint32(buf[offset:], ordinal)
	return buf
}
