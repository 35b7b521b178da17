package command

import (
	"errors"
	"testing"

	"canvasedit/pkg/richdoc"
)

var (
	plain = richdoc.DefaultPresets().Plain()
	bold  = richdoc.DefaultPresets()[richdoc.PresetBold]
	title = richdoc.DefaultPresets()[richdoc.PresetTitle]
)

func sameRuns(t *testing.T, got, want richdoc.Runs) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d runs, got %d: %#v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("run %d mismatch: got %#v want %#v", i, got[i], want[i])
		}
	}
}

func TestInsertDoesNotMutateInput(t *testing.T) {
	runs := richdoc.Runs{{Style: plain, Text: "Hello world"}}
	cmd := NewInsert(runs, 0, 5, " there", plain)
	out, err := cmd.Execute(runs)
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if got := out.Text(); got != "Hello there world" {
		t.Fatalf("unexpected text: %q", got)
	}
	if runs[0].Text != "Hello world" {
		t.Fatalf("input was modified: %q", runs[0].Text)
	}
}

func TestInsertBoundaryAppendsToTargetRun(t *testing.T) {
	runs := richdoc.Runs{{Style: bold, Text: "Bold "}, {Style: plain, Text: "text"}}
	out, err := NewInsert(runs, 0, 99, "er", plain).Execute(runs)
	if err != nil {
		t.Fatal(err)
	}
	sameRuns(t, out, richdoc.Runs{{Style: bold, Text: "Bold er"}, {Style: plain, Text: "text"}})

	out, err = NewInsert(runs, 7, 0, "!", plain).Execute(runs)
	if err != nil {
		t.Fatal(err)
	}
	if got := out[1].Text; got != "text!" {
		t.Fatalf("out of range run should append to the last run, got %q", got)
	}
}

func TestInsertIntoEmptyDocumentCreatesRun(t *testing.T) {
	cmd := NewInsert(nil, 0, 0, "hi", title)
	out, err := cmd.Execute(nil)
	if err != nil {
		t.Fatal(err)
	}
	sameRuns(t, out, richdoc.Runs{{Style: title, Text: "hi"}})
	back, err := cmd.Inverse().Execute(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(back) != 0 {
		t.Fatalf("expected empty document after inverse, got %#v", back)
	}
}

func TestRemoveVerifiesText(t *testing.T) {
	runs := richdoc.Runs{{Style: plain, Text: "abcdef"}}
	cmd, err := NewRemove(runs, 0, 1, 3)
	if err != nil {
		t.Fatal(err)
	}
	if cmd.Text != "bc" {
		t.Fatalf("expected captured text bc, got %q", cmd.Text)
	}
	stale := richdoc.Runs{{Style: plain, Text: "axxdef"}}
	if _, err := cmd.Execute(stale); !errors.Is(err, ErrAddressing) {
		t.Fatalf("expected ErrAddressing, got %v", err)
	}
	if _, err := NewRemove(runs, 0, 4, 9); !errors.Is(err, ErrAddressing) {
		t.Fatalf("expected ErrAddressing for out of range, got %v", err)
	}
}

func TestRemoveWholeRunDropsIt(t *testing.T) {
	runs := richdoc.Runs{{Style: bold, Text: "Bold "}, {Style: plain, Text: "text"}}
	cmd, err := NewRemove(runs, 0, 0, 5)
	if err != nil {
		t.Fatal(err)
	}
	out, err := cmd.Execute(runs)
	if err != nil {
		t.Fatal(err)
	}
	sameRuns(t, out, richdoc.Runs{{Style: plain, Text: "text"}})
	back, err := cmd.Inverse().Execute(out)
	if err != nil {
		t.Fatal(err)
	}
	sameRuns(t, back, runs)
}

func TestSetFormatSplitsAndRestores(t *testing.T) {
	runs := richdoc.Runs{{Style: plain, Text: "one two three"}}
	cmd, err := NewSetFormat(runs, 0, 4, 7, bold)
	if err != nil {
		t.Fatal(err)
	}
	out, err := cmd.Execute(runs)
	if err != nil {
		t.Fatal(err)
	}
	sameRuns(t, out, richdoc.Runs{
		{Style: plain, Text: "one "},
		{Style: bold, Text: "two"},
		{Style: plain, Text: " three"},
	})
	back, err := cmd.Inverse().Execute(out)
	if err != nil {
		t.Fatal(err)
	}
	sameRuns(t, back, runs)
}

func TestSetFormatFiltersEmptyPieces(t *testing.T) {
	runs := richdoc.Runs{{Style: title, Text: "abc"}}
	cmd, err := NewSetFormat(runs, 0, 0, 3, bold)
	if err != nil {
		t.Fatal(err)
	}
	if cmd.Pieces != 1 {
		t.Fatalf("expected 1 piece, got %d", cmd.Pieces)
	}
	out, err := cmd.Execute(runs)
	if err != nil {
		t.Fatal(err)
	}
	sameRuns(t, out, richdoc.Runs{{Style: bold, Text: "abc"}})
	back, err := cmd.Inverse().Execute(out)
	if err != nil {
		t.Fatal(err)
	}
	sameRuns(t, back, runs)
}

func TestChangeReverseRestoresMultiRunEdit(t *testing.T) {
	runs := richdoc.Runs{
		{Style: bold, Text: "ab"},
		{Style: title, Text: "cd"},
		{Style: plain, Text: "ef"},
	}
	// Commands for later runs first, so earlier indices stay valid.
	r2, _ := NewRemove(runs, 2, 0, 1)
	r1, _ := NewRemove(runs, 1, 0, 2)
	r0, _ := NewRemove(runs, 0, 1, 2)
	ch := NewChange(r2, r1, r0)

	out, err := ch.Execute(runs)
	if err != nil {
		t.Fatal(err)
	}
	sameRuns(t, out, richdoc.Runs{{Style: bold, Text: "a"}, {Style: plain, Text: "f"}})

	back, err := ch.Reverse().Execute(out)
	if err != nil {
		t.Fatal(err)
	}
	sameRuns(t, back, runs)
}

func TestChangeExecuteIsAtomic(t *testing.T) {
	runs := richdoc.Runs{{Style: plain, Text: "abc"}}
	ok := NewInsert(runs, 0, 0, "x", plain)
	bad := Command{Kind: KindRemove, Run: 3, Text: "z"}
	out, err := NewChange(ok, bad).Execute(runs)
	if !errors.Is(err, ErrAddressing) {
		t.Fatalf("expected ErrAddressing, got %v", err)
	}
	sameRuns(t, out, runs)
}
