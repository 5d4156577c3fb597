package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stdout)
	defer SetLevel(Notice)

	logger := New("test")

	SetLevel(Warning)
	logger.Info("hidden message")
	logger.Warningf("visible %s", "warning")

	out := buf.String()
	if strings.Contains(out, "hidden message") {
		t.Fatalf("expected info message to be filtered; got %q", out)
	}
	if !strings.Contains(out, "visible warning") || !strings.Contains(out, "[test]") {
		t.Fatalf("expected warning tagged with module name; got %q", out)
	}

	buf.Reset()
	SetLevel(Debug)
	logger.Debug("debug message")
	if !strings.Contains(buf.String(), "debug message") {
		t.Fatalf("expected debug message after raising verbosity; got %q", buf.String())
	}
}

func TestModuleLevel(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stdout)
	defer SetLevel(Notice)

	SetLevel(Error)
	SetModuleLevel("chatty", Debug)

	New("chatty").Info("from chatty")
	New("quiet").Info("from quiet")

	out := buf.String()
	if !strings.Contains(out, "from chatty") || strings.Contains(out, "from quiet") {
		t.Fatalf("expected only the chatty module to log; got %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	type spec struct {
		in    string
		exp   Level
		valid bool
	}
	specs := []spec{
		spec{"debug", Debug, true},
		spec{"INFO", Info, true},
		spec{" warning ", Warning, true},
		spec{"error", Error, true},
		spec{"verbose", Notice, false},
	}

	for index, s := range specs {
		got, err := ParseLevel(s.in)
		if (err == nil) != s.valid {
			t.Fatalf("[spec %d] expected valid=%t for %q; got err %v", index, s.valid, s.in, err)
		}
		if got != s.exp {
			t.Fatalf("[spec %d] expected level %d; got %d", index, s.exp, got)
		}
	}
}
