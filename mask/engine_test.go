package mask

import (
	"reflect"
	"testing"
)

const frontmatterDoc = "---\nsecret: 1\n---\n# Title\nHidden body text"

func fullSnapshot(text string, cfg Config) Snapshot {
	doc := NewDocument(text)
	return Snapshot{Doc: doc, Viewport: WholeDocument(doc), Config: cfg}
}

func TestCompute_FrontmatterAndTitleExcluded(t *testing.T) {
	s := fullSnapshot(frontmatterDoc, Config{
		Enabled: true,
		Reveal:  RevealNone,
		Exclude: Exclusions{LeadingMetadataBlock: true, TitleLine: true},
	})
	s.Cursor = 30

	got := Compute(s)
	want := []Range{{26, 42}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Compute=%v, want %v", got, want)
	}
	if text := s.Doc.Slice(got[0]); text != "Hidden body text" {
		t.Fatalf("masked text=%q", text)
	}
}

func TestCompute_UnterminatedMetadataStaysMasked(t *testing.T) {
	for _, keep := range []bool{false, true} {
		s := fullSnapshot("---\nsecret: 1", Config{
			Enabled: true,
			Exclude: Exclusions{LeadingMetadataBlock: keep},
		})
		got := Compute(s)
		want := []Range{{0, 3}, {4, 13}}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("keep=%v: Compute=%v, want %v", keep, got, want)
		}
	}
}

func TestCompute_Disabled(t *testing.T) {
	s := fullSnapshot(frontmatterDoc, Config{
		Enabled:         false,
		Reveal:          RevealWord,
		RevealSelection: true,
		Exclude:         Exclusions{Headings: true},
	})
	if got := Compute(s); len(got) != 0 {
		t.Fatalf("disabled: got %v, want empty", got)
	}
}

func TestCompute_HeadingsSkipWholeLine(t *testing.T) {
	text := "intro\n## Section\nbody"
	s := fullSnapshot(text, Config{Enabled: true, Exclude: Exclusions{Headings: true}})
	got := Compute(s)
	want := []Range{{0, 5}, {17, 21}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Compute=%v, want %v", got, want)
	}

	s.Config.Exclude.Headings = false
	got = Compute(s)
	want = []Range{{0, 5}, {6, 16}, {17, 21}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("headings masked: Compute=%v, want %v", got, want)
	}
}

func TestCompute_WordRevealSplitsLine(t *testing.T) {
	s := fullSnapshot("hello, world", Config{Enabled: true, Reveal: RevealWord})
	s.Cursor = 8
	got := Compute(s)
	want := []Range{{0, 7}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Compute=%v, want %v", got, want)
	}

	s.Cursor = 2
	got = Compute(s)
	want = []Range{{5, 12}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Compute=%v, want %v", got, want)
	}
}

func TestCompute_SelectionAcrossLines(t *testing.T) {
	s := fullSnapshot("aaaa\nbbbb\ncccc", Config{
		Enabled:         true,
		Reveal:          RevealLetter,
		RevealSelection: true,
	})
	s.Cursor = 7
	s.Selections = []Selection{{Anchor: 7, Head: 2}}

	got := Compute(s)
	want := []Range{{0, 2}, {8, 9}, {10, 14}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Compute=%v, want %v", got, want)
	}

	s.Config.RevealSelection = false
	got = Compute(s)
	want = []Range{{0, 4}, {5, 7}, {8, 9}, {10, 14}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("selection off: Compute=%v, want %v", got, want)
	}
}

func TestCompute_ViewportWindows(t *testing.T) {
	doc := NewDocument("l0\nl1\nl2\nl3\nl4")
	s := Snapshot{
		Doc:    doc,
		Config: Config{Enabled: true},
		Viewport: []Range{
			{From: 3, To: 4},   // line 1
			{From: 9, To: 11},  // line 3
			{From: 7, To: 7},   // zero width
			{From: 13, To: 12}, // reversed
		},
	}
	got := Compute(s)
	want := []Range{{3, 5}, {9, 11}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Compute=%v, want %v", got, want)
	}
}

func TestCompute_WindowsSharingALine(t *testing.T) {
	doc := NewDocument("abcdef\nxyz")
	s := Snapshot{
		Doc:      doc,
		Config:   Config{Enabled: true},
		Viewport: []Range{{From: 0, To: 2}, {From: 4, To: 8}},
	}
	got := Compute(s)
	want := []Range{{0, 6}, {7, 10}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Compute=%v, want %v", got, want)
	}
}

func TestCompute_OutOfRangeInputsClamp(t *testing.T) {
	doc := NewDocument("abc\ndef")
	s := Snapshot{
		Doc:        doc,
		Cursor:     1000,
		Selections: []Selection{{Anchor: -20, Head: 1}},
		Viewport:   []Range{{From: -10, To: 500}},
		Config:     Config{Enabled: true, Reveal: RevealLetter, RevealSelection: true},
	}
	got := Compute(s)
	want := []Range{{1, 3}, {4, 6}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Compute=%v, want %v", got, want)
	}
}

func TestCompute_UnknownRevealModeMasksAll(t *testing.T) {
	s := fullSnapshot("secret", Config{Enabled: true, Reveal: RevealMode(7)})
	s.Cursor = 2
	got := Compute(s)
	if want := []Range{{0, 6}}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Compute=%v, want %v", got, want)
	}
}

func TestCompute_EmptyLinesAndTrailingNewline(t *testing.T) {
	s := fullSnapshot("a\n\nb\n", Config{Enabled: true})
	got := Compute(s)
	want := []Range{{0, 1}, {3, 4}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Compute=%v, want %v", got, want)
	}
}

func TestCompute_OutputSortedAndDisjoint(t *testing.T) {
	s := fullSnapshot("# T\nsome words here\n\n## H\nmore text_x, y", Config{
		Enabled:         true,
		Reveal:          RevealWord,
		RevealSelection: true,
		Exclude:         Exclusions{TitleLine: true, Headings: true},
	})
	s.Cursor = 10
	s.Selections = []Selection{{Anchor: 30, Head: 37}}

	got := Compute(s)
	for i, r := range got {
		if r.IsEmpty() {
			t.Fatalf("empty range at %d: %v", i, got)
		}
		if i > 0 && got[i-1].To > r.From {
			t.Fatalf("overlap at %d: %v", i, got)
		}
	}
}
