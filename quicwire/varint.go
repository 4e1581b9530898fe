// Package quicwire encodes the QUIC variable-length integers (RFC 9000,
// Section 16) used to prefix batches on the wire.
package quicwire

import (
	"bytes"

	"github.com/quic-go/quic-go/quicvarint"
)

// MaxVarint is the largest value AppendVarint accepts.
const MaxVarint = quicvarint.Max

// AppendVarint appends v to b. It panics if v exceeds MaxVarint.
func AppendVarint(b []byte, v uint64) []byte {
	return quicvarint.Append(b, v)
}

// ConsumeVarint parses the varint at the start of b and returns its value and
// encoded length. The length is negative if b does not start with a complete
// varint.
func ConsumeVarint(b []byte) (uint64, int) {
	r := bytes.NewReader(b)
	v, err := quicvarint.Read(r)
	if err != nil {
		return 0, -1
	}
	return v, len(b) - r.Len()
}
