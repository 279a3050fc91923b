package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestZeroLoggerWritesComponent(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)
	l.Infof("iconset", "generating %s", "favicon.ico")
	l.Errorf("iconset", "boom: %d", 7)

	out := buf.String()
	for _, want := range []string{"generating favicon.ico", "component=iconset", "boom: 7", "INF", "ERR"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestZeroLoggerDebugLevel(t *testing.T) {
	var quiet, loud bytes.Buffer
	New(&quiet, false).Debugf("render", "cache hit %d", 32)
	New(&loud, true).Debugf("render", "cache hit %d", 32)

	if quiet.Len() != 0 {
		t.Errorf("debug line written without debug enabled: %q", quiet.String())
	}
	if !strings.Contains(loud.String(), "cache hit 32") {
		t.Errorf("debug line missing: %q", loud.String())
	}
}

func TestNoopLogger(t *testing.T) {
	var l Logger = NoopLogger{}
	l.Debugf("x", "y")
	l.Infof("x", "y")
	l.Errorf("x", "y")
}
