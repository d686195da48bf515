package tracing

import (
	"bytes"
	"errors"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/gridspan/flexlayout/layout"
)

func TestNew_ReturnsUniqueRunID(t *testing.T) {
	var buf bytes.Buffer
	a := New(&buf, log.InfoLevel)
	b := New(&buf, log.InfoLevel)

	if a.RunID() == "" {
		t.Fatal("RunID() returned empty string")
	}
	if a.RunID() == b.RunID() {
		t.Error("two Tracers should not share a run ID")
	}
}

func TestOnMeasure_LogsAtDebugLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		wantLog bool
	}{
		{"debug level logs measure lines", log.DebugLevel, true},
		{"info level suppresses measure lines", log.InfoLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tr := New(&buf, tt.level)

			tr.OnMeasure(0, 0, 100, 0, 50, false, layout.MeasureOutput{Width: 10, Height: 20})

			gotLog := buf.Len() > 0
			if gotLog != tt.wantLog {
				t.Errorf("got log output = %v, want %v", gotLog, tt.wantLog)
			}
		})
	}
}

func TestBeginEnd_LogsScenarioLifecycle(t *testing.T) {
	var buf bytes.Buffer
	tr := New(&buf, log.InfoLevel)

	tr.Begin("scenario.toml")
	if !bytes.Contains(buf.Bytes(), []byte("layout start")) {
		t.Error("Begin should log a start line")
	}

	buf.Reset()
	tr.End("scenario.toml", nil)
	if !bytes.Contains(buf.Bytes(), []byte("layout done")) {
		t.Error("End(nil) should log a done line")
	}

	buf.Reset()
	tr.End("scenario.toml", errors.New("boom"))
	if !bytes.Contains(buf.Bytes(), []byte("layout failed")) {
		t.Error("End(err) should log a failed line")
	}
}
