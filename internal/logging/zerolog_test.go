package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestZerologLogger_WritesJSONWithFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog("dporg", &buf)
	ctx := context.Background()

	log.Info(ctx, "email sent", "to", "a@x.com")

	out := buf.String()
	for _, s := range []string{
		`"service":"dporg"`,
		`"message":"email sent"`,
		`"to":"a@x.com"`,
		`"level":"info"`,
	} {
		if !strings.Contains(out, s) {
			t.Fatalf("expected %q in output, got:\n%s", s, out)
		}
	}
}

func TestZerologLogger_With_AddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog("dporg", &buf)

	log2 := log.With("op", "ingest")
	log2.Warn(context.Background(), "skipped")

	out := buf.String()
	if !strings.Contains(out, `"op":"ingest"`) || !strings.Contains(out, `"level":"warn"`) {
		t.Fatalf("missing attributes in output:\n%s", out)
	}
}

func TestPairsToFields_OddArgs(t *testing.T) {
	got := pairsToFields([]any{"a", 1, "b"})
	if got["a"] != 1 {
		t.Fatalf("expected a=1, got %v", got["a"])
	}
	if v, ok := got["b"]; !ok || v != "" {
		t.Fatalf("expected dangling key kept with empty value, got %v (%v)", v, ok)
	}
}
