package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"cmakefmt/internal/diag"
)

func TestJSONBasic(t *testing.T) {
	bag, fs := unterminatedBag(t)

	var buf bytes.Buffer
	err := JSON(&buf, bag, fs, JSONOpts{
		IncludePositions: true,
		PathMode:         PathModeBasename,
		IncludeNotes:     true,
	})
	if err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("invalid JSON output: %v\nOutput: %s", err, buf.String())
	}

	want := DiagnosticsOutput{
		Count:  1,
		Errors: 1,
		Diagnostics: []DiagnosticJSON{{
			Severity: "ERROR",
			Code:     "LEX1001",
			Title:    diag.LexUnterminatedQuoted.Title(),
			Message:  "unterminated quoted argument",
			Location: LocationJSON{
				File: "test.cmake", StartByte: 20, EndByte: 33,
				StartLine: 2, StartCol: 7, EndLine: 2, EndCol: 20,
			},
			Notes: []NoteJSON{{
				Message: "in this command",
				Location: LocationJSON{
					File: "test.cmake", StartByte: 14, EndByte: 17,
					StartLine: 2, StartCol: 1, EndLine: 2, EndCol: 4,
				},
			}},
		}},
	}
	if diff := cmp.Diff(want, output); diff != "" {
		t.Fatalf("JSON mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONMaxAndEmpty(t *testing.T) {
	bag, fs := unterminatedBag(t)
	bag.Add(diag.New(diag.SevWarning, diag.SynStrayToken, bag.Items()[0].Primary, "second"))

	output := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 1})
	if output.Count != 1 || output.Diagnostics[0].Notes != nil {
		t.Fatalf("unexpected output: %+v", output)
	}
	if !output.Truncated || output.Errors != 1 || output.Warnings != 1 {
		t.Fatalf("totals must cover the whole bag: %+v", output)
	}
	if output.Diagnostics[0].Location.StartLine != 0 {
		t.Fatalf("positions must be omitted without IncludePositions")
	}

	var buf bytes.Buffer
	if err := JSON(&buf, nil, fs, JSONOpts{}); err != nil {
		t.Fatalf("JSON(nil): %v", err)
	}
	if got := buf.String(); got != "{\n  \"diagnostics\": [],\n  \"count\": 0,\n  \"errors\": 0,\n  \"warnings\": 0\n}\n" {
		t.Fatalf("empty output = %q", got)
	}
}
