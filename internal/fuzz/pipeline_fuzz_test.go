package fuzztests

import (
	"bytes"
	"testing"

	"cmakefmt/internal/diag"
	"cmakefmt/internal/driver"
	"cmakefmt/internal/format"
	"cmakefmt/internal/lexer"
	"cmakefmt/internal/parser"
	"cmakefmt/internal/source"
	"cmakefmt/internal/testkit"
)

func FuzzParserLossless(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampSeed(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.cmake", input))
		bag := diag.NewBag(64)
		res := parser.ParseFile(lexer.New(file, lexer.Options{}), parser.Options{
			Reporter:  diag.BagReporter{Bag: bag},
			MaxErrors: 64,
		})
		if err := testkit.CheckLossless(res.Tree, file.Content); err != nil {
			t.Fatalf("%v\ninput: %q", err, file.Content)
		}
		if err := testkit.CheckSpanInvariants(res.Tree, file); err != nil {
			t.Fatalf("%v\ninput: %q", err, file.Content)
		}
	})
}

func FuzzFormatIdempotent(f *testing.F) {
	addCorpusSeeds(f)
	opts := []format.Options{format.DefaultOptions()}
	alt := format.DefaultOptions()
	alt.IndentWidth = 4
	alt.UseTab = true
	alt.SpacesInParens = true
	alt.SpaceBeforeParens = true
	alt.AlignArguments = false
	alt.ClosingParensOnNewLine = true
	alt.AlignOptions = true
	alt.KeepShortStatementOnSameLine = 3
	opts = append(opts, alt)

	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampSeed(input)
		for _, opt := range opts {
			once := format.Source(input, opt)
			twice := format.Source(once, opt)
			if !bytes.Equal(once, twice) {
				t.Fatalf("not idempotent\ninput: %q\nonce:  %q\ntwice: %q", input, once, twice)
			}
			if len(once) > 0 && !bytes.HasSuffix(once, []byte("\n")) {
				t.Fatalf("output does not end with a newline: %q", once)
			}
			fs := source.NewFileSet()
			file := fs.Get(fs.AddVirtual("fuzz.cmake", input))
			if ok, msg := driver.RunFmtCheck(file, opt, 64); !ok {
				t.Fatalf("%s\ninput: %q", msg, input)
			}
		}
	})
}
