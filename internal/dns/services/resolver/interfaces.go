package resolver

import (
	"net"

	"github.com/haukened/rootwalk/internal/dns/domain"
)

// Transport is the datagram capability the resolver sends queries through.
// It is held exclusively by the top-level resolution and reused, strictly
// sequentially, by every nested resolution; there is never more than one
// request in flight.
type Transport interface {
	Send(buf []byte, addr string) (int, error)
	Receive(buf []byte) (int, net.Addr, error)
}

// Codec encodes queries and decodes response messages.
type Codec interface {
	EncodeQuery(id uint16, name string, rrtype domain.RRType) ([]byte, error)
	ParseMessage(buf []byte) (domain.Message, error)
	DecodeNameAt(buf []byte, offset int) (string, error)
}
