package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder captures calls for assertions.
type recorder struct {
	level  string
	fields map[string]any
	msg    string
}

func (r *recorder) Debug(fields map[string]any, msg string) { r.level, r.fields, r.msg = "debug", fields, msg }
func (r *recorder) Info(fields map[string]any, msg string)  { r.level, r.fields, r.msg = "info", fields, msg }
func (r *recorder) Warn(fields map[string]any, msg string)  { r.level, r.fields, r.msg = "warn", fields, msg }
func (r *recorder) Error(fields map[string]any, msg string) { r.level, r.fields, r.msg = "error", fields, msg }

func TestPackageLevelFunctionsUseGlobal(t *testing.T) {
	orig := GetLogger()
	t.Cleanup(func() { SetLogger(orig) })

	rec := &recorder{}
	SetLogger(rec)

	Debug(map[string]any{"k": 1}, "debug msg")
	assert.Equal(t, "debug", rec.level)
	assert.Equal(t, "debug msg", rec.msg)

	Info(nil, "info msg")
	assert.Equal(t, "info", rec.level)

	Warn(nil, "warn msg")
	assert.Equal(t, "warn", rec.level)

	Error(map[string]any{"err": "boom"}, "error msg")
	assert.Equal(t, "error", rec.level)
	assert.Equal(t, map[string]any{"err": "boom"}, rec.fields)
}

func TestConfigure(t *testing.T) {
	orig := GetLogger()
	t.Cleanup(func() { SetLogger(orig) })

	require.NoError(t, Configure("dev", "debug"))
	assert.NotNil(t, GetLogger())

	require.NoError(t, Configure("prod", "WARN"))

	assert.Error(t, Configure("prod", "loud"))
}

func TestNoopLogger(t *testing.T) {
	l := NewNoopLogger()
	// Must not panic with nil fields.
	l.Debug(nil, "a")
	l.Info(nil, "b")
	l.Warn(nil, "c")
	l.Error(nil, "d")
}
