// Package roots holds the static table of IANA root name servers. The
// table is the fixed starting point of every resolution: it is loaded once,
// immutable for the process lifetime, and never consulted again after a
// starting authority has been picked.
package roots

import "github.com/haukened/rootwalk/internal/dns/common/rng"

// Server is one root name server entry.
type Server struct {
	IP   string
	Host string
}

// The 13 authoritative root servers as declared by IANA at
// https://www.iana.org/domains/root/servers
var table = [13]Server{
	{"198.41.0.4", "a.root-servers.net"},
	{"170.247.170.2", "b.root-servers.net"},
	{"192.33.4.12", "c.root-servers.net"},
	{"199.7.91.13", "d.root-servers.net"},
	{"192.203.230.10", "e.root-servers.net"},
	{"192.5.5.241", "f.root-servers.net"},
	{"192.112.36.4", "g.root-servers.net"},
	{"198.97.190.53", "h.root-servers.net"},
	{"192.36.148.17", "i.root-servers.net"},
	{"192.58.128.30", "j.root-servers.net"},
	{"193.0.14.129", "k.root-servers.net"},
	{"199.7.83.42", "l.root-servers.net"},
	{"202.12.27.33", "m.root-servers.net"},
}

// Pick selects a root server using the given source. A seeded source
// always picks the same entry.
func Pick(src rng.Source) Server {
	return table[src.IntN(len(table))]
}

// All returns a copy of the root server table in its fixed order.
func All() []Server {
	out := make([]Server, len(table))
	copy(out, table[:])
	return out
}
