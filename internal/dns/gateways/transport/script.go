package transport

import (
	"fmt"
	"net"

	"github.com/haukened/rootwalk/internal/dns/domain"
)

// scriptKey matches a send call against a preconfigured response. Both the
// exact request bytes and the destination must match: a transcript proves
// the resolver sent exactly what it was expected to, where it was expected
// to send it.
type scriptKey struct {
	query string
	addr  string
}

// Script is a Transport vending preconfigured responses. Sending a
// (request, destination) pair the script does not know fails the send;
// receiving without a pending response fails the read.
type Script struct {
	responses map[scriptKey][]byte
	next      []byte
	pending   bool
}

// NewScript creates an empty scripted transport.
func NewScript() *Script {
	return &Script{responses: make(map[scriptKey][]byte)}
}

// Expect registers the response to vend after query is sent to addr.
func (s *Script) Expect(query []byte, addr string, response []byte) {
	s.responses[scriptKey{query: string(query), addr: addr}] = response
}

// Send looks the request up in the script and stages its response for the
// next Receive.
func (s *Script) Send(buf []byte, addr string) (int, error) {
	resp, ok := s.responses[scriptKey{query: string(buf), addr: addr}]
	if !ok {
		return 0, fmt.Errorf("%w: unscripted query to %s", domain.ErrTransportSend, addr)
	}
	s.next = resp
	s.pending = true
	return len(buf), nil
}

// Receive returns the response staged by the last Send.
func (s *Script) Receive(buf []byte) (int, net.Addr, error) {
	if !s.pending {
		return 0, nil, fmt.Errorf("%w: no response pending", domain.ErrTransportReceive)
	}
	s.pending = false
	n := copy(buf, s.next)
	return n, &net.UDPAddr{IP: net.IPv4zero, Port: 0}, nil
}

var _ Transport = (*Script)(nil)
