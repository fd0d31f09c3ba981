package wire

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haukened/rootwalk/internal/dns/common/log"
	"github.com/haukened/rootwalk/internal/dns/domain"
)

// rfc1035Example is the compression example from RFC 1035 §4.1.4: the name
// F.ISI.ARPA written out at offset 20, FOO plus a pointer to offset 20 at
// offset 40, and a lone pointer into the middle of the first name (ARPA,
// offset 26) at offset 64.
var rfc1035Example = []byte{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // padding
	1, 'F', 3, 'I', 'S', 'I', 4, 'A', 'R', 'P', 'A', 0, // 20 - 31
	0, 0, 0, 0, 0, 0, 0, 0, // padding
	3, 'F', 'O', 'O', 0xC0, 20, // 40 - 45
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // padding
	0xC0, 26, 0, // 64 - 66
}

func TestEncodeName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []byte
		wantErr error
	}{
		{
			name:  "multi label name",
			input: "toy.dns.project",
			want: []byte{
				3, 't', 'o', 'y', 3, 'd', 'n', 's',
				7, 'p', 'r', 'o', 'j', 'e', 'c', 't', 0,
			},
		},
		{
			name:  "trailing dot is ignored",
			input: "example.com.",
			want:  []byte{7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0},
		},
		{
			name:  "empty name is just the terminator",
			input: "",
			want:  []byte{0},
		},
		{
			name:    "non-ascii name",
			input:   "❌",
			wantErr: domain.ErrInvalidName,
		},
		{
			name:    "label longer than 63 bytes",
			input:   strings.Repeat("a", 64) + ".com",
			wantErr: domain.ErrLabelTooLong,
		},
		{
			name:    "encoded name longer than 255 bytes",
			input:   strings.Join([]string{strings.Repeat("a", 63), strings.Repeat("b", 63), strings.Repeat("c", 63), strings.Repeat("d", 63)}, "."),
			wantErr: domain.ErrNameTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeName(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeNameAt_Uncompressed(t *testing.T) {
	codec := New(0, log.NewNoopLogger())

	// Trailing zeros must remain unread behind the terminator.
	buf := []byte{3, 'w', 'w', 'w', 7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0, 0, 0, 0}
	name, err := codec.DecodeNameAt(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, "www.example.com", name)
}

func TestDecodeNameAt_RFC1035Compression(t *testing.T) {
	codec := New(0, log.NewNoopLogger())

	tests := []struct {
		name   string
		offset int
		want   string
	}{
		{"written out in full", 20, "F.ISI.ARPA"},
		{"labels then pointer", 40, "FOO.F.ISI.ARPA"},
		{"pointer into middle of earlier name", 64, "ARPA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := codec.DecodeNameAt(rfc1035Example, tt.offset)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeNameAt_Errors(t *testing.T) {
	codec := New(0, log.NewNoopLogger())

	tests := []struct {
		name    string
		buf     []byte
		offset  int
		wantErr error
	}{
		{
			name:    "missing length byte",
			buf:     []byte{},
			offset:  0,
			wantErr: domain.ErrReadLength,
		},
		{
			name:    "label bytes truncated",
			buf:     []byte{3, 'w'},
			offset:  0,
			wantErr: domain.ErrReadByte,
		},
		{
			name:    "invalid utf8 byte in label",
			buf:     []byte{1, 0x80, 0},
			offset:  0,
			wantErr: domain.ErrInvalidName,
		},
		{
			name:    "reserved length prefix",
			buf:     []byte{0x80, 'a', 0},
			offset:  0,
			wantErr: domain.ErrInvalidName,
		},
		{
			name:    "pointer missing second byte",
			buf:     []byte{0xC0},
			offset:  0,
			wantErr: domain.ErrPointerRead,
		},
		{
			name:    "pointer offset out of range",
			buf:     []byte{0xC0, 200},
			offset:  0,
			wantErr: domain.ErrPointerSeek,
		},
		{
			name:    "pointer to itself",
			buf:     []byte{0xC0, 0},
			offset:  0,
			wantErr: domain.ErrPointerLoop,
		},
		{
			name:    "two pointers cycling",
			buf:     []byte{0xC0, 2, 0xC0, 0},
			offset:  0,
			wantErr: domain.ErrPointerLoop,
		},
		{
			name:    "anchor offset outside buffer",
			buf:     []byte{0},
			offset:  5,
			wantErr: domain.ErrPointerSeek,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.DecodeNameAt(tt.buf, tt.offset)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	codec := New(0, log.NewNoopLogger())

	names := []string{
		"example.com",
		"www.example.com",
		"a.b.c.d.e",
		"localhost",
		"xn--nxasmq6b.example",
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			encoded, err := EncodeName(name)
			require.NoError(t, err)

			decoded, err := codec.DecodeNameAt(encoded, 0)
			require.NoError(t, err)
			assert.Equal(t, name, decoded)
		})
	}
}
