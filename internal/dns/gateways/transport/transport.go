// Package transport provides the datagram capability the resolver sends
// queries through. The resolver never constructs sockets itself: it only
// consumes this interface, which may be backed by a real UDP socket or by
// a scripted responder keyed by (request bytes, destination) for
// deterministic tests.
package transport

import "net"

// Transport is the three-operation capability the resolver holds. Binding
// happens in the constructor; Send and Receive are strictly sequential —
// the resolver never has more than one request in flight.
type Transport interface {
	// Send transmits buf to addr ("ip:port") and returns the byte count.
	Send(buf []byte, addr string) (int, error)

	// Receive blocks until a datagram arrives, copies it into buf, and
	// returns the byte count and the remote address.
	Receive(buf []byte) (int, net.Addr, error)
}
