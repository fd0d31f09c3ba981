package wire

import (
	"bytes"

	"github.com/haukened/rootwalk/internal/dns/domain"
)

// ParseMessage decodes a complete DNS message: header, then exactly as
// many questions, answers, authorities, and additionals as the header
// counts declare, in that order. The header counts are the only authority
// for section sizes. The first failure aborts the decode. A zero-length
// buffer decodes to an empty message, as does a header-only buffer with
// all counts zero.
func (c *Codec) ParseMessage(buf []byte) (domain.Message, error) {
	if len(buf) == 0 {
		return domain.Message{}, nil
	}

	cur := newCursor(buf)
	hdr, err := decodeHeader(cur)
	if err != nil {
		return domain.Message{}, err
	}

	msg := domain.Message{
		Header:    hdr,
		Questions: make([]domain.Question, 0, hdr.QuestionCount),
	}
	for range hdr.QuestionCount {
		q, err := c.decodeQuestion(cur)
		if err != nil {
			return domain.Message{}, err
		}
		msg.Questions = append(msg.Questions, q)
	}

	sections := []struct {
		count uint16
		out   *[]domain.Record
	}{
		{hdr.AnswerCount, &msg.Answers},
		{hdr.AuthorityCount, &msg.Authorities},
		{hdr.AdditionalCount, &msg.Additionals},
	}
	for _, section := range sections {
		*section.out = make([]domain.Record, 0, section.count)
		for range section.count {
			rec, err := c.decodeRecord(cur)
			if err != nil {
				return domain.Message{}, err
			}
			*section.out = append(*section.out, rec)
		}
	}

	c.logger.Debug(map[string]any{
		"id":          hdr.ID,
		"questions":   len(msg.Questions),
		"answers":     len(msg.Answers),
		"authorities": len(msg.Authorities),
		"additionals": len(msg.Additionals),
	}, "Decoded DNS message")

	return msg, nil
}

// decodeHeader reads the fixed 12-byte header. Each field has its own
// failure kind so truncation is diagnosable to the field.
func decodeHeader(cur *cursor) (domain.Header, error) {
	var hdr domain.Header
	fields := []struct {
		dst *uint16
		err error
	}{
		{&hdr.ID, domain.ErrParseID},
		{&hdr.Flags, domain.ErrParseFlags},
		{&hdr.QuestionCount, domain.ErrParseQuestionCount},
		{&hdr.AnswerCount, domain.ErrParseAnswerCount},
		{&hdr.AuthorityCount, domain.ErrParseAuthorityCount},
		{&hdr.AdditionalCount, domain.ErrParseAdditionalCount},
	}
	for _, f := range fields {
		v, ok := cur.readUint16()
		if !ok {
			return domain.Header{}, f.err
		}
		*f.dst = v
	}
	return hdr, nil
}

func (c *Codec) decodeQuestion(cur *cursor) (domain.Question, error) {
	name, err := c.decodeName(cur)
	if err != nil {
		return domain.Question{}, err
	}
	rawType, ok := cur.readUint16()
	if !ok {
		return domain.Question{}, domain.ErrReadQuestionType
	}
	rrtype, err := domain.RRTypeFromWire(rawType)
	if err != nil {
		return domain.Question{}, err
	}
	class, ok := cur.readUint16()
	if !ok {
		return domain.Question{}, domain.ErrReadQuestionClass
	}
	return domain.Question{
		Name:  name,
		Type:  rrtype,
		Class: domain.RRClass(class),
	}, nil
}

// decodeRecord reads one resource record. The declared data length must be
// satisfied exactly; a record with fewer remaining bytes fails rather than
// carrying a truncated payload.
func (c *Codec) decodeRecord(cur *cursor) (domain.Record, error) {
	name, err := c.decodeName(cur)
	if err != nil {
		return domain.Record{}, err
	}
	rawType, ok := cur.readUint16()
	if !ok {
		return domain.Record{}, domain.ErrReadRecordType
	}
	rrtype, err := domain.RRTypeFromWire(rawType)
	if err != nil {
		return domain.Record{}, err
	}
	class, ok := cur.readUint16()
	if !ok {
		return domain.Record{}, domain.ErrReadRecordClass
	}
	ttl, ok := cur.readUint32()
	if !ok {
		return domain.Record{}, domain.ErrReadRecordTTL
	}
	dataLen, ok := cur.readUint16()
	if !ok {
		return domain.Record{}, domain.ErrReadRecordDataLength
	}
	dataOffset := cur.position()
	data, ok := cur.readN(int(dataLen))
	if !ok {
		return domain.Record{}, domain.ErrReadRecordData
	}
	return domain.Record{
		Name:       name,
		Type:       rrtype,
		Class:      domain.RRClass(class),
		TTL:        ttl,
		Data:       bytes.Clone(data),
		DataOffset: dataOffset,
	}, nil
}
