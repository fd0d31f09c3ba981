package domain

import "strconv"

// Record represents a DNS resource record as decoded off the wire.
// Data holds the raw payload whose length the wire format declares
// explicitly; a Record is never constructed with a partial payload.
type Record struct {
	Name  string
	Type  RRType
	Class RRClass
	TTL   uint32
	Data  []byte

	// DataOffset is the offset of Data within the message buffer the record
	// was decoded from. Name compression pointers inside the payload refer
	// to the full message, so decoding an embedded name needs this anchor.
	DataOffset int
}

// IPAddress renders the record data as dotted decimal, one octet per byte.
// For A records this is the IPv4 address.
func (r Record) IPAddress() string {
	if len(r.Data) == 0 {
		return ""
	}
	out := make([]byte, 0, len(r.Data)*4)
	for i, b := range r.Data {
		if i > 0 {
			out = append(out, '.')
		}
		out = strconv.AppendUint(out, uint64(b), 10)
	}
	return string(out)
}
