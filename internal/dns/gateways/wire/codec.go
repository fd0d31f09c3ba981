// Package wire implements the DNS wire format for UDP messages as
// specified in RFC 1035 §4.1, including name compression per §4.1.4.
// Decoding is all-or-nothing: the first failure aborts the whole decode
// and no partial message is ever returned.
package wire

import (
	"github.com/haukened/rootwalk/internal/dns/common/log"
)

// defaultMaxPointerJumps bounds how many compression redirects a single
// name may chain through. Well-formed messages stay in the low single
// digits; anything deeper is a crafted loop.
const defaultMaxPointerJumps = 10

// Codec encodes queries and decodes responses.
type Codec struct {
	maxPointerJumps int
	logger          log.Logger
}

// New creates a Codec. maxPointerJumps bounds compression pointer chains;
// values below 1 fall back to the default.
func New(maxPointerJumps int, logger log.Logger) *Codec {
	if maxPointerJumps < 1 {
		maxPointerJumps = defaultMaxPointerJumps
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Codec{
		maxPointerJumps: maxPointerJumps,
		logger:          logger,
	}
}
