package diag

import (
	"testing"

	"cmakefmt/internal/source"
)

func TestBagLimitAndSeverity(t *testing.T) {
	bag := NewBag(2)
	if !bag.Add(New(SevInfo, SynMissingParen, source.Span{}, "bare")) {
		t.Fatalf("first add rejected")
	}
	if bag.HasWarnings() || bag.HasErrors() {
		t.Fatalf("info must not count as warning/error")
	}
	bag.Add(NewError(LexUnterminatedQuoted, source.Span{Start: 4, End: 9}, "unterminated"))
	if bag.Add(NewError(LexUnterminatedBracket, source.Span{}, "dropped")) {
		t.Fatalf("bag accepted item past its limit")
	}
	if !bag.HasErrors() || bag.Len() != 2 {
		t.Fatalf("unexpected bag state: %+v", bag.Items())
	}
	bag.Filter(SevWarning)
	if bag.Len() != 1 || bag.Items()[0].Code != LexUnterminatedQuoted {
		t.Fatalf("Filter kept %+v", bag.Items())
	}
}

func TestBagSortAndDedup(t *testing.T) {
	bag := NewBag(10)
	bag.Add(New(SevWarning, SynUnclosedParen, source.Span{Start: 10, End: 11}, "b"))
	bag.Add(New(SevError, LexUnterminatedQuoted, source.Span{Start: 2, End: 5}, "a"))
	bag.Add(New(SevError, LexUnterminatedQuoted, source.Span{Start: 2, End: 5}, "a again"))
	bag.Sort()
	bag.Dedup()

	items := bag.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 items after dedup, got %d", len(items))
	}
	if items[0].Code != LexUnterminatedQuoted || items[1].Code != SynUnclosedParen {
		t.Fatalf("unexpected order: %v, %v", items[0].Code, items[1].Code)
	}
}

func TestDedupReporter(t *testing.T) {
	bag := NewBag(10)
	rep := NewDedupReporter(BagReporter{Bag: bag})
	for range 3 {
		ReportWarning(rep, SynUnclosedParen, source.Span{Start: 1, End: 2}, "unclosed").Emit()
	}
	if bag.Len() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", bag.Len())
	}
	if rep.Suppressed() != 2 {
		t.Fatalf("expected 2 suppressed, got %d", rep.Suppressed())
	}
	ReportWarning(rep, SynUnclosedParen, source.Span{Start: 1, End: 3}, "unclosed").Emit()
	if bag.Len() != 2 {
		t.Fatalf("different span must pass through, got %d", bag.Len())
	}
}

func TestParseSeverity(t *testing.T) {
	cases := []struct {
		in   string
		want Severity
		ok   bool
	}{
		{"info", SevInfo, true},
		{"WARN", SevWarning, true},
		{" warning ", SevWarning, true},
		{"Error", SevError, true},
		{"fatal", SevInfo, false},
	}
	for _, tc := range cases {
		got, ok := ParseSeverity(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseSeverity(%q) = %v,%v want %v,%v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestCodeID(t *testing.T) {
	cases := map[Code]string{
		LexUnterminatedQuoted: "LEX1001",
		SynUnclosedParen:      "SYN2001",
		IOLoadFileError:       "IO4001",
		CfgUnknownKey:         "CFG5001",
		FmtNotIdempotent:      "FMT6001",
		UnknownCode:           "E0000",
	}
	for code, want := range cases {
		if got := code.ID(); got != want {
			t.Fatalf("%d.ID() = %q, want %q", code, got, want)
		}
	}
}
