// Package domain holds the core DNS types shared by the codec, the
// transport layer, and the resolver. Every value here is created fresh per
// encode/decode call; nothing is cached or shared across resolutions.
package domain

// Header is the fixed 12-byte DNS message header per RFC 1035 §4.1.1.
// Flags are kept as an opaque bitfield: this resolver never inspects them.
// The four counts are the only authority for how many questions and records
// follow in the message body.
type Header struct {
	ID              uint16
	Flags           uint16
	QuestionCount   uint16
	AnswerCount     uint16
	AuthorityCount  uint16
	AdditionalCount uint16
}

// Question represents one entry of a DNS question section.
type Question struct {
	Name  string
	Type  RRType
	Class RRClass
}

// Message is a fully decoded DNS message. A Message only ever exists in a
// consistent state: decoding is all-or-nothing, so each section holds
// exactly the number of elements its header count declares.
type Message struct {
	Header      Header
	Questions   []Question
	Answers     []Record
	Authorities []Record
	Additionals []Record
}

// FirstAnswer returns the first answer record of the given type in section
// order, or nil if there is none. There is no scoring or preference logic;
// the first match wins.
func (m Message) FirstAnswer(t RRType) *Record {
	return firstOfType(m.Answers, t)
}

// FirstAuthority returns the first authority record of the given type, or nil.
func (m Message) FirstAuthority(t RRType) *Record {
	return firstOfType(m.Authorities, t)
}

// FirstAdditional returns the first additional record of the given type, or nil.
func (m Message) FirstAdditional(t RRType) *Record {
	return firstOfType(m.Additionals, t)
}

func firstOfType(records []Record, t RRType) *Record {
	for i := range records {
		if records[i].Type == t {
			return &records[i]
		}
	}
	return nil
}
