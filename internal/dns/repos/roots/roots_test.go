package roots

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haukened/rootwalk/internal/dns/common/rng"
)

func TestAll(t *testing.T) {
	servers := All()
	require.Len(t, servers, 13)

	seen := make(map[string]bool)
	for i, s := range servers {
		assert.NotEmpty(t, s.IP)
		assert.True(t, strings.HasSuffix(s.Host, ".root-servers.net"), "entry %d host %q", i, s.Host)
		assert.False(t, seen[s.IP], "duplicate ip %s", s.IP)
		seen[s.IP] = true
	}

	assert.Equal(t, Server{IP: "198.41.0.4", Host: "a.root-servers.net"}, servers[0])
	assert.Equal(t, Server{IP: "202.12.27.33", Host: "m.root-servers.net"}, servers[12])
}

func TestAll_ReturnsCopy(t *testing.T) {
	first := All()
	first[0] = Server{IP: "0.0.0.0", Host: "tampered"}
	assert.Equal(t, "198.41.0.4", All()[0].IP)
}

func TestPick_SeededIsStable(t *testing.T) {
	src := rng.NewSeeded(42)

	first := Pick(src)
	for range 10 {
		assert.Equal(t, first, Pick(src))
	}
	assert.Equal(t, first, Pick(rng.NewSeeded(42)))
}

func TestPick_AlwaysInTable(t *testing.T) {
	known := make(map[Server]bool)
	for _, s := range All() {
		known[s] = true
	}

	src := rng.New()
	for range 100 {
		assert.True(t, known[Pick(src)])
	}
}
