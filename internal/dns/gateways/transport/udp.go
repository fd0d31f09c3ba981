package transport

import (
	"fmt"
	"net"
	"time"

	"github.com/haukened/rootwalk/internal/dns/domain"
)

// UDP implements Transport over a single bound UDP socket.
type UDP struct {
	conn    net.PacketConn
	timeout time.Duration
}

// NewUDP binds a UDP socket on localAddr (e.g. "0.0.0.0:0"). timeout is
// the per-receive deadline; zero disables it and Receive blocks until a
// datagram arrives.
func NewUDP(localAddr string, timeout time.Duration) (*UDP, error) {
	conn, err := net.ListenPacket("udp", localAddr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrTransportBind, err)
	}
	return &UDP{conn: conn, timeout: timeout}, nil
}

// Send transmits buf to addr in "ip:port" form.
func (t *UDP) Send(buf []byte, addr string) (int, error) {
	udpAddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", domain.ErrTransportSend, err)
	}
	n, err := t.conn.WriteTo(buf, udpAddr)
	if err != nil {
		return n, fmt.Errorf("%w: %w", domain.ErrTransportSend, err)
	}
	return n, nil
}

// Receive blocks for the next datagram, honoring the configured deadline.
func (t *UDP) Receive(buf []byte) (int, net.Addr, error) {
	if t.timeout > 0 {
		if err := t.conn.SetReadDeadline(time.Now().Add(t.timeout)); err != nil {
			return 0, nil, fmt.Errorf("%w: %w", domain.ErrTransportReceive, err)
		}
	}
	n, addr, err := t.conn.ReadFrom(buf)
	if err != nil {
		return n, addr, fmt.Errorf("%w: %w", domain.ErrTransportReceive, err)
	}
	return n, addr, nil
}

// Close releases the socket.
func (t *UDP) Close() error {
	return t.conn.Close()
}

// LocalAddr returns the bound local address.
func (t *UDP) LocalAddr() net.Addr {
	return t.conn.LocalAddr()
}

var _ Transport = (*UDP)(nil)
