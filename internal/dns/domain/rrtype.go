package domain

// RRType represents a DNS resource record type (e.g. A, NS, AAAA).
// The set of supported types is deliberately closed: the resolver refuses
// to represent record types it does not understand, so decoding any other
// wire value is an error rather than an "unknown" variant.
type RRType uint16

// DNS Resource Record Type constants. Types with value <= 16 are defined
// in RFC 1035; AAAA is defined in RFC 3596.
const (
	RRTypeInvalid RRType = 0  // Sentinel, never produced by queries
	RRTypeA       RRType = 1  // A - IPv4 address
	RRTypeNS      RRType = 2  // NS - Name server
	RRTypeAAAA    RRType = 28 // AAAA - IPv6 address
)

// RRTypeFromWire converts a wire value to an RRType. Any value outside the
// supported set fails with ErrUnrecognizedRecordType.
func RRTypeFromWire(v uint16) (RRType, error) {
	t := RRType(v)
	switch t {
	case RRTypeInvalid, RRTypeA, RRTypeNS, RRTypeAAAA:
		return t, nil
	default:
		return RRTypeInvalid, ErrUnrecognizedRecordType
	}
}

// IsValid returns true if the RRType is one of the supported types.
func (t RRType) IsValid() bool {
	switch t {
	case RRTypeInvalid, RRTypeA, RRTypeNS, RRTypeAAAA:
		return true
	default:
		return false
	}
}

// String returns the textual representation of the RRType.
func (t RRType) String() string {
	switch t {
	case RRTypeA:
		return "A"
	case RRTypeNS:
		return "NS"
	case RRTypeAAAA:
		return "AAAA"
	default:
		return "INVALID"
	}
}
