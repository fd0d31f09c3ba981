// Package resolver walks the DNS delegation hierarchy for a single
// (domain, record type) pair, starting from a root server, without
// consulting any external recursive resolver. It is fully synchronous: a
// single transport or decode failure aborts the whole resolution, nothing
// is retried, and no partial result is ever returned.
package resolver

import (
	"fmt"

	"github.com/haukened/rootwalk/internal/dns/common/log"
	"github.com/haukened/rootwalk/internal/dns/common/rng"
	"github.com/haukened/rootwalk/internal/dns/domain"
	"github.com/haukened/rootwalk/internal/dns/repos/roots"
)

const (
	defaultBufferSize = 1024
	defaultMaxDepth   = 16
)

// Resolver drives the delegation loop.
type Resolver struct {
	transport  Transport
	codec      Codec
	source     rng.Source
	logger     log.Logger
	bufferSize int
	maxDepth   int
}

// Options configures a Resolver. Transport and Codec are required; the
// rest have working defaults.
type Options struct {
	Transport  Transport
	Codec      Codec
	Source     rng.Source
	Logger     log.Logger
	BufferSize int // receive capacity; replies that fill it are reported as truncated
	MaxDepth   int // bound on both nesting depth and authorities per attempt
}

// New creates a Resolver.
func New(opts Options) *Resolver {
	if opts.Logger == nil {
		opts.Logger = log.NewNoopLogger()
	}
	if opts.BufferSize <= 0 {
		opts.BufferSize = defaultBufferSize
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = defaultMaxDepth
	}
	return &Resolver{
		transport:  opts.Transport,
		codec:      opts.Codec,
		source:     opts.Source,
		logger:     opts.Logger,
		bufferSize: opts.BufferSize,
		maxDepth:   opts.MaxDepth,
	}
}

// Resolve walks the delegation chain for (name, rrtype) and returns the
// full response message of the authority that answered.
func (r *Resolver) Resolve(name string, rrtype domain.RRType) (domain.Message, error) {
	return r.resolve(name, rrtype, 0)
}

// resolve is one full resolution attempt at the given nesting depth. Each
// attempt starts over from a freshly picked root server and keeps its own
// set of already-queried authorities, so a misbehaving authority that keeps
// delegating fails closed instead of looping forever.
func (r *Resolver) resolve(name string, rrtype domain.RRType, depth int) (domain.Message, error) {
	if depth >= r.maxDepth {
		return domain.Message{}, fmt.Errorf("%w: nesting depth %d", domain.ErrDelegationLoop, depth)
	}

	root := roots.Pick(r.source)
	authorityIP := root.IP
	authorityHost := root.Host
	visited := make(map[string]bool)

	for {
		if visited[authorityIP] {
			return domain.Message{}, fmt.Errorf("%w: %s delegated back to itself", domain.ErrDelegationLoop, authorityIP)
		}
		if len(visited) >= r.maxDepth {
			return domain.Message{}, fmt.Errorf("%w: %d authorities queried", domain.ErrDelegationLoop, len(visited))
		}
		visited[authorityIP] = true

		msg, raw, err := r.exchange(name, rrtype, authorityIP, authorityHost, depth)
		if err != nil {
			return domain.Message{}, err
		}

		// Evaluate the response in strict priority order: an answer wins,
		// then glue, then delegation.
		if msg.FirstAnswer(rrtype) != nil {
			return msg, nil
		}

		if glue := msg.FirstAdditional(domain.RRTypeA); glue != nil {
			// The authority handed us a more specific server's address
			// directly. The hostname is unknown from here on.
			authorityIP = glue.IPAddress()
			authorityHost = ""
			continue
		}

		if ns := msg.FirstAuthority(domain.RRTypeNS); ns != nil {
			// The authority named another server by hostname, not address.
			// The NS payload is a name inside the response message, so it
			// may compress against any earlier offset of that buffer.
			target, err := r.codec.DecodeNameAt(raw, ns.DataOffset)
			if err != nil {
				return domain.Message{}, err
			}

			r.logger.Info(map[string]any{
				"authority": authorityIP,
				"target":    target,
				"depth":     depth,
			}, "Handed off to nameserver")

			// Resolving the delegated server's own address is a full
			// independent resolution from a fresh root, one level deeper.
			// The loop continues at the original depth afterwards.
			nested, err := r.resolve(target, domain.RRTypeA, depth+1)
			if err != nil {
				return domain.Message{}, err
			}
			addr := nested.FirstAnswer(domain.RRTypeA)
			if addr == nil {
				return domain.Message{}, fmt.Errorf("%w: %s has no address record", domain.ErrUnknownDomain, target)
			}

			authorityIP = addr.IPAddress()
			authorityHost = target

			r.logger.Info(map[string]any{
				"target":  target,
				"address": authorityIP,
				"depth":   depth + 1,
			}, "Resolved nameserver address")
			continue
		}

		// No answer, no glue, no delegation: nobody knows the name.
		return domain.Message{}, fmt.Errorf("%w: %s", domain.ErrUnknownDomain, name)
	}
}

// exchange performs one query round trip against a single authority and
// returns the decoded message along with the raw response bytes it was
// decoded from.
func (r *Resolver) exchange(name string, rrtype domain.RRType, ip, host string, depth int) (domain.Message, []byte, error) {
	query, err := r.codec.EncodeQuery(r.source.QueryID(), name, rrtype)
	if err != nil {
		return domain.Message{}, nil, err
	}

	r.logger.Info(map[string]any{
		"domain": name,
		"type":   rrtype.String(),
		"server": ip,
		"host":   host,
		"depth":  depth,
	}, "Looking up domain at authority")

	if _, err := r.transport.Send(query, ip+":53"); err != nil {
		return domain.Message{}, nil, err
	}

	buf := make([]byte, r.bufferSize)
	n, _, err := r.transport.Receive(buf)
	if err != nil {
		return domain.Message{}, nil, err
	}
	if n == len(buf) {
		return domain.Message{}, nil, fmt.Errorf("%w: %d bytes", domain.ErrResponseTruncated, n)
	}

	raw := buf[:n]
	msg, err := r.codec.ParseMessage(raw)
	if err != nil {
		return domain.Message{}, nil, err
	}
	return msg, raw, nil
}
