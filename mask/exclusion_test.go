package mask

import (
	"reflect"
	"testing"
)

func TestMetadataBlock(t *testing.T) {
	cases := []struct {
		name string
		text string
		want Range
		ok   bool
	}{
		{name: "dashes", text: "---\na: 1\n---\nbody", want: Range{0, 12}, ok: true},
		{name: "dots terminator", text: "---\na: 1\n...\nbody", want: Range{0, 12}, ok: true},
		{name: "padded delimiters", text: " --- \na\n---  ", want: Range{0, 13}, ok: true},
		{name: "empty block", text: "---\n---", want: Range{0, 7}, ok: true},
		{name: "unterminated", text: "---\nsecret: 1", ok: false},
		{name: "single line", text: "---", ok: false},
		{name: "not first line", text: "\n---\na\n---", ok: false},
		{name: "four dashes", text: "----\na\n---", ok: false},
	}

	for _, tc := range cases {
		got, ok := MetadataBlock(NewDocument(tc.text))
		if ok != tc.ok {
			t.Fatalf("%s: ok=%v, want %v", tc.name, ok, tc.ok)
		}
		if ok && got != tc.want {
			t.Fatalf("%s: range=%v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestTitleLine(t *testing.T) {
	cases := []struct {
		name string
		text string
		want Range
		ok   bool
	}{
		{name: "first line heading", text: "# Title\nbody", want: Range{0, 7}, ok: true},
		{name: "first line text", text: "Title\nbody", ok: false},
		{name: "after metadata", text: "---\na\n---\n## T\nx", want: Range{10, 14}, ok: true},
		{name: "metadata then text", text: "---\na\n---\nT\nx", ok: false},
		{name: "metadata only", text: "---\na\n---", ok: false},
		{name: "unterminated metadata", text: "---\n# T", ok: false},
	}

	for _, tc := range cases {
		got, ok := TitleLine(NewDocument(tc.text))
		if ok != tc.ok {
			t.Fatalf("%s: ok=%v, want %v", tc.name, ok, tc.ok)
		}
		if ok && got != tc.want {
			t.Fatalf("%s: range=%v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestExcludedRanges_Independent(t *testing.T) {
	doc := NewDocument("---\na\n---\n# T\nbody")

	if got := ExcludedRanges(doc, Exclusions{}); len(got) != 0 {
		t.Fatalf("no exclusions: got %v", got)
	}
	if got, want := ExcludedRanges(doc, Exclusions{LeadingMetadataBlock: true}), []Range{{0, 9}}; !reflect.DeepEqual(got, want) {
		t.Fatalf("metadata: got %v, want %v", got, want)
	}
	if got, want := ExcludedRanges(doc, Exclusions{TitleLine: true}), []Range{{10, 13}}; !reflect.DeepEqual(got, want) {
		t.Fatalf("title: got %v, want %v", got, want)
	}
	got := ExcludedRanges(doc, Exclusions{LeadingMetadataBlock: true, TitleLine: true, Headings: true})
	if want := []Range{{0, 9}, {10, 13}}; !reflect.DeepEqual(got, want) {
		t.Fatalf("both: got %v, want %v", got, want)
	}
}
