package wire

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/haukened/rootwalk/internal/dns/domain"
)

const (
	// A length byte with both top bits set marks a compression pointer;
	// the remaining 14 bits plus the following byte form an offset from
	// the start of the message (RFC 1035 §4.1.4).
	compressionMask = 0xC0

	maxLabelLength = 63
	maxNameLength  = 255
)

// EncodeName encodes a textual domain name into wire labels: one length
// byte per non-empty dot-separated part followed by the part's bytes, then
// a zero terminator. The name must be pure ASCII, no label may exceed 63
// bytes, and the encoded form may not exceed 255 bytes.
func EncodeName(name string) ([]byte, error) {
	for i := 0; i < len(name); i++ {
		if name[i] > unicode.MaxASCII {
			return nil, domain.ErrInvalidName
		}
	}
	out := make([]byte, 0, len(name)+2)
	for _, label := range strings.Split(name, ".") {
		if label == "" {
			continue
		}
		if len(label) > maxLabelLength {
			return nil, domain.ErrLabelTooLong
		}
		out = append(out, byte(len(label)))
		out = append(out, label...)
	}
	out = append(out, 0)
	if len(out) > maxNameLength {
		return nil, domain.ErrNameTooLong
	}
	return out, nil
}

// DecodeNameAt decodes a name anchored at an absolute offset of the full
// message buffer. Compression pointers inside the name may reference any
// earlier offset of that buffer, which is why the anchor matters: record
// payloads embedding names (e.g. NS targets) must be decoded against the
// message they arrived in, not against the detached payload bytes.
func (c *Codec) DecodeNameAt(buf []byte, offset int) (string, error) {
	cur := newCursor(buf)
	if !cur.seek(offset) {
		return "", domain.ErrPointerSeek
	}
	return c.decodeName(cur)
}

func (c *Codec) decodeName(cur *cursor) (string, error) {
	return c.decodeNameJumps(cur, 0)
}

// decodeNameJumps reads labels until the zero terminator or a compression
// pointer. A pointer redirects decoding to an earlier offset; its target
// may itself contain labels and further pointers, but a pointer is always
// the final component of the name it appears in. jumps counts redirects
// across the whole chain so a pointer cycle fails closed instead of
// recursing forever.
func (c *Codec) decodeNameJumps(cur *cursor, jumps int) (string, error) {
	var labels []string
	for {
		length, ok := cur.readUint8()
		if !ok {
			return "", domain.ErrReadLength
		}
		if length == 0 {
			break
		}
		switch length & compressionMask {
		case 0:
			label, ok := cur.readN(int(length))
			if !ok {
				return "", domain.ErrReadByte
			}
			if !utf8.Valid(label) {
				return "", domain.ErrInvalidName
			}
			labels = append(labels, string(label))
		case compressionMask:
			if jumps >= c.maxPointerJumps {
				return "", domain.ErrPointerLoop
			}
			low, ok := cur.readUint8()
			if !ok {
				return "", domain.ErrPointerRead
			}
			offset := int(length&^byte(compressionMask))<<8 | int(low)
			saved := cur.position()
			if !cur.seek(offset) {
				return "", domain.ErrPointerSeek
			}
			suffix, err := c.decodeNameJumps(cur, jumps+1)
			if err != nil {
				return "", err
			}
			if !cur.seek(saved) {
				return "", domain.ErrCursorRestore
			}
			labels = append(labels, suffix)
			return strings.Join(labels, "."), nil
		default:
			// 0b10 and 0b01 length prefixes are reserved by RFC 1035.
			return "", domain.ErrInvalidName
		}
	}
	return strings.Join(labels, "."), nil
}
