package bulk

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/arloliu/grnbulk/errs"
	"github.com/arloliu/grnbulk/format"
)

func TestLogger_DefaultIsNop(t *testing.T) {
	require.NotNil(t, Logger())
	require.False(t, Logger().Core().Enabled(zapcore.ErrorLevel))
}

func TestSetLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	enc, err := NewEncoder()
	require.NoError(t, err)

	_, err = enc.Encode(struct{}{})
	require.ErrorIs(t, err, errs.ErrUnsupportedType)

	entries := logs.FilterMessage("bulk encode rejected value").All()
	require.Len(t, entries, 1)
	require.Equal(t, "struct {}", entries[0].ContextMap()["type"])

	SetLogger(nil)
	require.False(t, Logger().Core().Enabled(zapcore.ErrorLevel))
}

func TestWithLogger_OverridesPackageLogger(t *testing.T) {
	pkgCore, pkgLogs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(pkgCore))
	t.Cleanup(func() { SetLogger(nil) })

	core, logs := observer.New(zapcore.DebugLevel)
	enc, err := NewEncoder(WithLogger(zap.New(core)))
	require.NoError(t, err)

	_, err = enc.EncodeVector([]any{"x"})
	require.Error(t, err)

	require.Equal(t, 1, logs.FilterMessage("id coercion failed").Len())
	require.Zero(t, pkgLogs.Len())
}

func TestSetLogger_AfterConstruction(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)
	dec, err := NewDecoder(nil)
	require.NoError(t, err)

	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	_, err = enc.Encode(struct{}{})
	require.Error(t, err)
	dec.Decode(NewBulk(format.DomainInt32, []byte("raw")))

	require.Equal(t, 1, logs.FilterMessage("bulk encode rejected value").Len())
	require.Equal(t, 1, logs.FilterMessage("bulk decoded as raw text").Len())
}
