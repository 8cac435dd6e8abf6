package rewrite

import (
	"reflect"
	"strings"
	"testing"
)

func TestBuildLineOffsets(t *testing.T) {
	tests := []struct {
		in   string
		want []int
	}{
		{"", []int{0}},
		{"ab", []int{0}},
		{"ab\ncd", []int{0, 3}},
		{"ab\ncd\n", []int{0, 3}},
		{"\n\nx", []int{0, 1, 2}},
	}
	for _, tt := range tests {
		if got := BuildLineOffsets([]byte(tt.in)); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("BuildLineOffsets(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestScannerRewriter_ReplaceLines(t *testing.T) {
	content := "zero\none\ntwo\nthree\nfour\n"
	rw := NewScannerRewriter([]byte(content))

	if err := rw.ReplaceLines(1, 2, []string{"ONE-TWO"}); err != nil {
		t.Fatalf("ReplaceLines failed: %v", err)
	}
	if err := rw.ReplaceLines(4, 4, []string{"FOUR", "FIVE"}); err != nil {
		t.Fatalf("ReplaceLines failed: %v", err)
	}
	if err := rw.CopyRemainingLines(); err != nil {
		t.Fatalf("CopyRemainingLines failed: %v", err)
	}

	want := "zero\nONE-TWO\nthree\nFOUR\nFIVE\n"
	if got := string(rw.Bytes()); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestScannerRewriter_Errors(t *testing.T) {
	rw := NewScannerRewriter([]byte("a\nb\n"))
	if err := rw.ReplaceLines(1, 1, []string{"B"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := rw.ReplaceLines(0, 0, []string{"A"}); err == nil {
		t.Error("expected error replacing a line already consumed")
	}
	if err := rw.ReplaceLines(5, 5, []string{"X"}); err == nil {
		t.Error("expected error replacing past the end")
	}
}

func TestScannerRewriter_LineIndexOfByte(t *testing.T) {
	content := "ab\ncd\nef"
	rw := NewScannerRewriter([]byte(content))
	cases := map[int]int{0: 0, 1: 0, 2: 0, 3: 1, 5: 1, 6: 2, 7: 2}
	for off, want := range cases {
		if got := rw.LineIndexOfByte(off); got != want {
			t.Errorf("LineIndexOfByte(%d) = %d, want %d", off, got, want)
		}
	}
}

func TestReplaceAtOffsets(t *testing.T) {
	content := "# Catalog\n- b\ntext\n- a\n"
	offsets := []int{strings.Index(content, "b"), strings.Index(content, "a\n")}

	got, err := ReplaceAtOffsets([]byte(content), offsets, []string{"- first", "- second"})
	if err != nil {
		t.Fatalf("ReplaceAtOffsets failed: %v", err)
	}
	want := "# Catalog\n- first\ntext\n- second\n"
	if string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if _, err := ReplaceAtOffsets([]byte(content), offsets, []string{"only one"}); err == nil {
		t.Error("expected error for mismatched lengths")
	}
	if _, err := ReplaceAtOffsets([]byte(content), []int{3, 5}, []string{"x", "y"}); err == nil {
		t.Error("expected error for two offsets on the same line")
	}
}
