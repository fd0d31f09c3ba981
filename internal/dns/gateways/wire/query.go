package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/haukened/rootwalk/internal/dns/domain"
)

// EncodeQuery serializes a single-question query message: a header with
// the given transaction id, one question, all flags and other counts zero,
// class IN, all fields big-endian. Any failure maps to
// domain.ErrQuerySerialization; in particular a non-ASCII name fails here,
// before any network activity.
func (c *Codec) EncodeQuery(id uint16, name string, rrtype domain.RRType) ([]byte, error) {
	encodedName, err := EncodeName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrQuerySerialization, err)
	}

	var buf bytes.Buffer

	// Header
	_ = binary.Write(&buf, binary.BigEndian, id)
	_ = binary.Write(&buf, binary.BigEndian, uint16(0)) // Flags
	_ = binary.Write(&buf, binary.BigEndian, uint16(1)) // QDCOUNT
	_ = binary.Write(&buf, binary.BigEndian, uint16(0)) // ANCOUNT
	_ = binary.Write(&buf, binary.BigEndian, uint16(0)) // NSCOUNT
	_ = binary.Write(&buf, binary.BigEndian, uint16(0)) // ARCOUNT

	// Question
	buf.Write(encodedName)
	_ = binary.Write(&buf, binary.BigEndian, uint16(rrtype))
	_ = binary.Write(&buf, binary.BigEndian, uint16(domain.RRClassIN))

	return buf.Bytes(), nil
}
