package gfx_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hubastard/imbridge/engine/gfx"
	"github.com/hubastard/imbridge/engine/gfx/gfxtest"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	gfx.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { gfx.SetLogger(nil) })
	return &buf
}

func TestCheckErrorNumbersOccurrences(t *testing.T) {
	buf := captureLog(t)
	dev := gfxtest.New()
	dev.RaiseError(0x0501)
	dev.RaiseError(0x0502)

	n := gfx.CheckError(dev, "Projection")
	assert.Equal(t, 2, n)
	assert.Contains(t, buf.String(), "Projection (1): InvalidValue")
	assert.Contains(t, buf.String(), "Projection (2): InvalidOperation")

	assert.Zero(t, gfx.CheckError(dev, "Projection"))
}

func TestErrorStringUnknown(t *testing.T) {
	assert.Equal(t, "0x9999", gfx.ErrorString(0x9999))
}

func TestDebugLabelsSupported(t *testing.T) {
	tests := []struct {
		name         string
		major, minor int32
		exts         []string
		want         bool
	}{
		{"3.3 without extension", 3, 3, []string{"GL_ARB_debug_output"}, false},
		{"4.1 without extension", 4, 1, nil, false},
		{"4.3", 4, 3, nil, true},
		{"4.6", 4, 6, nil, true},
		{"3.3 with KHR_debug", 3, 3, []string{"GL_ARB_texture_storage", "GL_KHR_debug"}, true},
		{"bare extension name", 3, 3, []string{"KHR_debug"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := gfxtest.New()
			dev.Major, dev.Minor, dev.Exts = tt.major, tt.minor, tt.exts
			assert.Equal(t, tt.want, gfx.DebugLabelsSupported(dev))
		})
	}
}

func TestLabelerSkipsUnsupported(t *testing.T) {
	dev := gfxtest.New()
	l := gfx.NewLabeler(dev)
	assert.False(t, l.Enabled())
	l.Label(gfx.ObjectBuffer, 7, "VBO")
	assert.Empty(t, dev.Label(7))

	dev.Major, dev.Minor = 4, 3
	l = gfx.NewLabeler(dev)
	l.Label(gfx.ObjectBuffer, 7, "VBO")
	assert.Equal(t, "VBO", dev.Label(7))
}
