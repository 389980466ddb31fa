package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"cmakefmt/internal/diag"
	"cmakefmt/internal/source"
)

func unterminatedBag(t *testing.T) (*diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	content := []byte("project(demo)\nset(X \"unterminated\n")
	fileID := fs.AddVirtual("/home/user/project/cmake/test.cmake", content)
	fs.SetBaseDir("/home/user/project")

	bag := diag.NewBag(10)
	d := diag.New(
		diag.SevError,
		diag.LexUnterminatedQuoted,
		source.Span{File: fileID, Start: 20, End: 33},
		"unterminated quoted argument",
	).WithNote(source.Span{File: fileID, Start: 14, End: 17}, "in this command")
	bag.Add(d)
	return bag, fs
}

// TestPathModes проверяет различные режимы форматирования путей
func TestPathModes(t *testing.T) {
	bag, fs := unterminatedBag(t)

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{name: "absolute", mode: PathModeAbsolute, contains: "/home/user/project/cmake/test.cmake:2:7"},
		{name: "relative", mode: PathModeRelative, contains: "cmake/test.cmake:2:7"},
		{name: "basename", mode: PathModeBasename, contains: "test.cmake:2:7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{Context: 1, PathMode: tt.mode})
			output := buf.String()

			if !strings.Contains(output, tt.contains) {
				t.Fatalf("expected output to contain %q, got:\n%s", tt.contains, output)
			}
			for _, want := range []string{"ERROR", "LEX1001", "unterminated quoted argument"} {
				if !strings.Contains(output, want) {
					t.Fatalf("missing %q in:\n%s", want, output)
				}
			}
		})
	}
}

func TestPrettySnippet(t *testing.T) {
	bag, fs := unterminatedBag(t)
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Context: 1, PathMode: PathModeBasename, ShowNotes: true})

	want := strings.Join([]string{
		"test.cmake:2:7: ERROR LEX1001: unterminated quoted argument",
		"1 | project(demo)",
		"2 | set(X \"unterminated",
		"  | " + strings.Repeat(" ", 6) + "^" + strings.Repeat("~", 12),
		"  note: test.cmake:2:1: in this command",
		"1 | project(demo)",
		"2 | set(X \"unterminated",
		"  | ^~~",
		"",
	}, "\n")
	if buf.String() != want {
		t.Fatalf("pretty output mismatch:\n got: %q\nwant: %q", buf.String(), want)
	}
}

func TestPrettyColor(t *testing.T) {
	bag, fs := unterminatedBag(t)

	var plain, colored bytes.Buffer
	Pretty(&plain, bag, fs, PrettyOpts{PathMode: PathModeBasename})
	Pretty(&colored, bag, fs, PrettyOpts{PathMode: PathModeBasename, Color: true})

	if strings.Contains(plain.String(), "\x1b[") {
		t.Fatalf("plain output has escapes: %q", plain.String())
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Fatalf("colored output has no escapes: %q", colored.String())
	}
}

func TestPrettyWideCharacters(t *testing.T) {
	fs := source.NewFileSet()
	// "ключ" занимает 8 байт, но 4 колонки
	content := []byte("set(ключ\tbad)\n")
	fileID := fs.AddVirtual("wide.cmake", content)
	bag := diag.NewBag(1)
	bag.Add(diag.New(diag.SevWarning, diag.SynStrayToken, source.Span{File: fileID, Start: 13, End: 16}, "stray"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})
	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 3 {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
	// "set(" + 4 wide columns + tab expanded to 4 spaces
	if want := "  | " + strings.Repeat(" ", 12) + "^~~"; lines[2] != want {
		t.Fatalf("caret line = %q, want %q", lines[2], want)
	}
}
