package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestInit_StampsServiceAndComponent(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	Init(Options{Level: "info", Output: &buf, Service: "storefront-gateway"})
	Init(Options{Level: "error", Output: &bytes.Buffer{}}) // ignored

	l := Component("session")
	l.Info().Msg("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	if entry["service"] != "storefront-gateway" || entry["component"] != "session" || entry["message"] != "hello" {
		t.Fatalf("unexpected entry %v", entry)
	}
}

func TestGet_PanicsBeforeInit(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	Get()
}

func TestFromContext(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var fallbackBuf, reqBuf bytes.Buffer
	fallback := zerolog.New(&fallbackBuf)

	l := FromContext(context.Background(), fallback)
	l.Info().Msg("no request")
	if fallbackBuf.Len() == 0 {
		t.Fatalf("expected fallback logger to be used")
	}

	ctx := WithContext(context.Background(), zerolog.New(&reqBuf).With().Str("request_id", "r-1").Logger())
	l = FromContext(ctx, fallback)
	l.Info().Msg("in request")

	var entry map[string]any
	if err := json.Unmarshal(reqBuf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid json %q: %v", reqBuf.String(), err)
	}
	if entry["request_id"] != "r-1" {
		t.Fatalf("unexpected entry %v", entry)
	}
}
