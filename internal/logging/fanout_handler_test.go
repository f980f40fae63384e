package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
)

func TestNewTeeHandlerCollapses(t *testing.T) {
	if _, ok := newTeeHandler(nil, nil).(NoopHandler); !ok {
		t.Fatal("expected NoopHandler when every handler is nil")
	}
	var buf bytes.Buffer
	inner := slog.NewJSONHandler(&buf, nil)
	if h := newTeeHandler(nil, inner); h != inner {
		t.Fatal("expected the single handler to be returned unwrapped")
	}
}

func TestTeeHandlerRespectsEachLevel(t *testing.T) {
	var infoBuf, debugBuf bytes.Buffer
	info := slog.NewJSONHandler(&infoBuf, &slog.HandlerOptions{Level: slog.LevelInfo})
	debug := slog.NewJSONHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug})
	h := newTeeHandler(info, debug)

	if !h.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("expected debug enabled through the debug handler")
	}
	slog.New(h).Debug("debug only")
	if infoBuf.Len() != 0 {
		t.Fatal("info handler received a debug record")
	}
	if debugBuf.Len() == 0 {
		t.Fatal("debug handler missed the record")
	}
}

func TestTeeHandlerCarriesAttrsAndGroups(t *testing.T) {
	var buf1, buf2 bytes.Buffer
	h := newTeeHandler(slog.NewJSONHandler(&buf1, nil), slog.NewJSONHandler(&buf2, nil))
	logger := slog.New(h.WithAttrs([]slog.Attr{slog.String("component", "server")}).WithGroup("req"))
	logger.Info("served", slog.Int("status", 200))

	for i, buf := range []*bytes.Buffer{&buf1, &buf2} {
		out := buf.Bytes()
		if !bytes.Contains(out, []byte(`"component":"server"`)) || !bytes.Contains(out, []byte(`"req":{"status":200}`)) {
			t.Fatalf("handler %d output missing attrs: %s", i, out)
		}
	}
}
