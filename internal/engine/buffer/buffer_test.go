package buffer

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewBufferHasOneLine(t *testing.T) {
	b := New()

	if b.LineCount() != 1 {
		t.Errorf("expected 1 line, got %d", b.LineCount())
	}

	lines, err := b.GetLines(0, -1, false)
	if err != nil {
		t.Fatalf("GetLines failed: %v", err)
	}
	if !reflect.DeepEqual(lines, []string{""}) {
		t.Errorf("expected [\"\"], got %v", lines)
	}

	if b.IsModified() {
		t.Error("new buffer should not be modified")
	}
}

func TestSetLinesRoundTrip(t *testing.T) {
	b := New()
	content := []string{"line1", "line2", "line3"}

	if err := b.SetLines(0, -1, false, content); err != nil {
		t.Fatalf("SetLines failed: %v", err)
	}

	lines, err := b.GetLines(0, -1, false)
	if err != nil {
		t.Fatalf("GetLines failed: %v", err)
	}
	if !reflect.DeepEqual(lines, content) {
		t.Errorf("expected %v, got %v", content, lines)
	}
}

func TestCannotHaveZeroLines(t *testing.T) {
	b := NewFromLines([]string{"line1", "line2"})

	if err := b.SetLines(0, -1, false, nil); err != nil {
		t.Fatalf("SetLines failed: %v", err)
	}

	if b.LineCount() != 1 {
		t.Errorf("expected 1 line after deleting all, got %d", b.LineCount())
	}

	lines, _ := b.GetLines(0, -1, false)
	if !reflect.DeepEqual(lines, []string{""}) {
		t.Errorf("expected [\"\"], got %v", lines)
	}
}

func TestNegativeIndexLastLine(t *testing.T) {
	b := NewFromLines([]string{"a", "b", "c"})

	lines, err := b.GetLines(-2, -1, false)
	if err != nil {
		t.Fatalf("GetLines failed: %v", err)
	}
	if !reflect.DeepEqual(lines, []string{"c"}) {
		t.Errorf("expected last line [c], got %v", lines)
	}

	lines, err = b.GetLines(-1, -1, false)
	if err != nil {
		t.Fatalf("GetLines failed: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("expected empty result for (-1,-1), got %v", lines)
	}
}

func TestEmptyRangeReturnsEmpty(t *testing.T) {
	b := NewFromLines([]string{"a", "b"})

	lines, err := b.GetLines(0, 0, false)
	if err != nil {
		t.Fatalf("GetLines failed: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("expected empty, got %v", lines)
	}

	// start past end is empty, not an error, in lenient mode
	lines, err = b.GetLines(1, 0, false)
	if err != nil {
		t.Fatalf("GetLines failed: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("expected empty, got %v", lines)
	}
}

func TestOutOfBoundsNonStrict(t *testing.T) {
	b := NewFromLines([]string{"a"})

	lines, err := b.GetLines(100, 200, false)
	if err != nil {
		t.Fatalf("GetLines failed: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("expected empty for clamped out-of-bounds read, got %v", lines)
	}
}

func TestOutOfBoundsStrict(t *testing.T) {
	b := NewFromLines([]string{"a"})

	_, err := b.GetLines(100, 200, true)
	if !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds, got %v", err)
	}

	err = b.SetLines(100, 200, true, []string{"x"})
	if !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds, got %v", err)
	}
}

func TestInsertAtBeginning(t *testing.T) {
	b := NewFromLines([]string{"original"})

	if err := b.SetLines(0, 0, false, []string{"inserted"}); err != nil {
		t.Fatalf("SetLines failed: %v", err)
	}

	lines, _ := b.GetLines(0, -1, false)
	if !reflect.DeepEqual(lines, []string{"inserted", "original"}) {
		t.Errorf("got %v", lines)
	}
}

func TestInsertAtEnd(t *testing.T) {
	b := NewFromLines([]string{"original"})

	if err := b.SetLines(-1, -1, false, []string{"appended"}); err != nil {
		t.Fatalf("SetLines failed: %v", err)
	}

	lines, _ := b.GetLines(0, -1, false)
	if !reflect.DeepEqual(lines, []string{"original", "appended"}) {
		t.Errorf("got %v", lines)
	}
}

func TestReplaceLines(t *testing.T) {
	b := NewFromLines([]string{"a", "b", "c"})

	if err := b.SetLines(1, 2, false, []string{"B"}); err != nil {
		t.Fatalf("SetLines failed: %v", err)
	}

	lines, _ := b.GetLines(0, -1, false)
	if !reflect.DeepEqual(lines, []string{"a", "B", "c"}) {
		t.Errorf("got %v", lines)
	}
}

func TestDeleteLines(t *testing.T) {
	b := NewFromLines([]string{"a", "b", "c"})

	if err := b.SetLines(1, 2, false, nil); err != nil {
		t.Fatalf("SetLines failed: %v", err)
	}

	lines, _ := b.GetLines(0, -1, false)
	if !reflect.DeepEqual(lines, []string{"a", "c"}) {
		t.Errorf("got %v", lines)
	}
}

func TestSetLinesSplitsEmbeddedNewlines(t *testing.T) {
	b := New()

	if err := b.SetLines(0, -1, false, []string{"one\ntwo", "three\r\nfour"}); err != nil {
		t.Fatalf("SetLines failed: %v", err)
	}

	lines, _ := b.GetLines(0, -1, false)
	want := []string{"one", "two", "three", "four"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("expected %v, got %v", want, lines)
	}
}

func TestAppend(t *testing.T) {
	b := NewFromLines([]string{"first"})

	if err := b.Append(0, []string{"before"}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := b.Append(2, []string{"after"}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	lines, _ := b.GetLines(0, -1, false)
	if !reflect.DeepEqual(lines, []string{"before", "first", "after"}) {
		t.Errorf("got %v", lines)
	}
}

func TestChangedTickIncrements(t *testing.T) {
	b := NewFromLines([]string{"a"})

	tick := b.ChangedTick()
	if err := b.SetLines(0, 1, false, []string{"a"}); err != nil {
		t.Fatalf("SetLines failed: %v", err)
	}

	// A no-op splice of equal content is still a modification.
	if b.ChangedTick() != tick+1 {
		t.Errorf("expected tick %d, got %d", tick+1, b.ChangedTick())
	}
	if !b.IsModified() {
		t.Error("buffer should be modified after successful SetLines")
	}
}

func TestLineCountInvariantUnderSetLinesSequences(t *testing.T) {
	b := New()

	seq := []struct {
		start, end  int
		replacement []string
	}{
		{0, -1, []string{"a", "b", "c", "d"}},
		{1, 3, nil},
		{0, -1, nil},
		{0, 0, []string{"x"}},
		{-1, -1, []string{"y", "z"}},
		{0, -1, nil},
	}

	for i, step := range seq {
		if err := b.SetLines(step.start, step.end, false, step.replacement); err != nil {
			t.Fatalf("step %d failed: %v", i, err)
		}
		if b.LineCount() < 1 {
			t.Fatalf("step %d: line count %d < 1", i, b.LineCount())
		}
	}
}

func TestNotModifiable(t *testing.T) {
	b := NewFromLines([]string{"a"})
	b.SetModifiable(false)

	err := b.SetLines(0, -1, false, []string{"x"})
	if !errors.Is(err, ErrNotModifiable) {
		t.Errorf("expected ErrNotModifiable, got %v", err)
	}

	// Content and tick unchanged on failure.
	if b.ChangedTick() != 0 {
		t.Errorf("tick should be unchanged, got %d", b.ChangedTick())
	}

	// The flag setter itself is never gated.
	b.SetModifiable(true)
	if err := b.SetLines(0, -1, false, []string{"x"}); err != nil {
		t.Errorf("SetLines failed after re-enabling: %v", err)
	}
}

func TestClearModifiedFlag(t *testing.T) {
	b := New()
	if err := b.SetLines(0, -1, false, []string{"content"}); err != nil {
		t.Fatalf("SetLines failed: %v", err)
	}

	b.SetModified(false)
	if b.IsModified() {
		t.Error("modified flag should be clearable")
	}
}

func TestSetText(t *testing.T) {
	tests := []struct {
		name        string
		lines       []string
		startRow    int
		startCol    int
		endRow      int
		endCol      int
		replacement []string
		want        []string
	}{
		{
			name:        "within line",
			lines:       []string{"hello world"},
			startRow:    0, startCol: 6, endRow: 0, endCol: 11,
			replacement: []string{"there"},
			want:        []string{"hello there"},
		},
		{
			name:        "join lines",
			lines:       []string{"foo", "bar"},
			startRow:    0, startCol: 3, endRow: 1, endCol: 0,
			replacement: []string{""},
			want:        []string{"foobar"},
		},
		{
			name:        "split line",
			lines:       []string{"foobar"},
			startRow:    0, startCol: 3, endRow: 0, endCol: 3,
			replacement: []string{"", ""},
			want:        []string{"foo", "bar"},
		},
		{
			name:        "across lines",
			lines:       []string{"aaa", "bbb", "ccc"},
			startRow:    0, startCol: 1, endRow: 2, endCol: 2,
			replacement: []string{"X"},
			want:        []string{"aXc"},
		},
		{
			name:        "empty replacement deletes span",
			lines:       []string{"abc", "def"},
			startRow:    0, startCol: 1, endRow: 1, endCol: 2,
			replacement: nil,
			want:        []string{"af"},
		},
		{
			name:        "column clamped to line length",
			lines:       []string{"ab"},
			startRow:    0, startCol: 0, endRow: 0, endCol: 99,
			replacement: []string{"z"},
			want:        []string{"z"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewFromLines(tt.lines)
			err := b.SetText(tt.startRow, tt.startCol, tt.endRow, tt.endCol, tt.replacement)
			if err != nil {
				t.Fatalf("SetText failed: %v", err)
			}
			got, _ := b.GetLines(0, -1, false)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSetTextRowOutOfRange(t *testing.T) {
	b := NewFromLines([]string{"a"})

	err := b.SetText(5, 0, 5, 0, []string{"x"})
	if !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds, got %v", err)
	}
}

func TestUnload(t *testing.T) {
	b := NewFromLines([]string{"a", "b"})
	b.Unload()

	if b.LoadState() != Unloaded {
		t.Errorf("expected Unloaded, got %v", b.LoadState())
	}
	if b.LineCount() != 0 {
		t.Errorf("expected 0 lines when unloaded, got %d", b.LineCount())
	}

	// Reads never error on unloaded buffers, even strict ones.
	lines, err := b.GetLines(0, -1, true)
	if err != nil {
		t.Errorf("unloaded read should not error: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("expected no content, got %v", lines)
	}

	// Unloading twice is a no-op.
	b.Unload()
	if b.LoadState() != Unloaded {
		t.Errorf("expected Unloaded, got %v", b.LoadState())
	}
}

func TestSetLinesRevivesUnloadedBuffer(t *testing.T) {
	b := NewFromLines([]string{"a"})
	b.Unload()

	if err := b.SetLines(0, -1, false, []string{"fresh"}); err != nil {
		t.Fatalf("SetLines failed: %v", err)
	}
	if b.LoadState() != Loaded {
		t.Errorf("expected Loaded, got %v", b.LoadState())
	}
	lines, _ := b.GetLines(0, -1, false)
	if !reflect.DeepEqual(lines, []string{"fresh"}) {
		t.Errorf("got %v", lines)
	}
}

func TestWipe(t *testing.T) {
	b := NewFromLines([]string{"a"})

	if err := b.Wipe(false); err != nil {
		t.Fatalf("Wipe failed: %v", err)
	}
	if b.IsValid() {
		t.Error("wiped buffer should not be valid")
	}

	err := b.SetLines(0, -1, false, []string{"x"})
	if !errors.Is(err, ErrBufferWiped) {
		t.Errorf("expected ErrBufferWiped, got %v", err)
	}
}

func TestWipeModifiedRequiresForce(t *testing.T) {
	b := New()
	if err := b.SetLines(0, -1, false, []string{"dirty"}); err != nil {
		t.Fatalf("SetLines failed: %v", err)
	}

	if err := b.Wipe(false); !errors.Is(err, ErrBufferModified) {
		t.Errorf("expected ErrBufferModified, got %v", err)
	}
	if !b.IsValid() {
		t.Error("failed wipe must not invalidate the buffer")
	}

	if err := b.Wipe(true); err != nil {
		t.Errorf("forced wipe failed: %v", err)
	}
}

func TestDeleteUnlistsAndUnloads(t *testing.T) {
	b := NewFromLines([]string{"a"})

	if err := b.Delete(false); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if b.IsListed() {
		t.Error("deleted buffer should be unlisted")
	}
	if b.LoadState() != Unloaded {
		t.Errorf("expected Unloaded, got %v", b.LoadState())
	}
	if !b.IsValid() {
		t.Error("deleted buffer is still valid (not wiped)")
	}
}

func TestShiftEmittedOnSetLines(t *testing.T) {
	b := NewFromLines([]string{"line1", "line2", "line3", "line4"})

	var got []Shift
	b.OnShift(ShiftFunc(func(s Shift) { got = append(got, s) }))

	// Insert 2, remove 1, above line 3.
	if err := b.SetLines(1, 2, true, []string{"line5", "line6"}); err != nil {
		t.Fatalf("SetLines failed: %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("expected 1 shift, got %d", len(got))
	}
	s := got[0]
	if s.AtLine != 2 {
		t.Errorf("expected AtLine 2, got %d", s.AtLine)
	}
	if s.LineDelta != 1 {
		t.Errorf("expected LineDelta 1, got %d", s.LineDelta)
	}
	if s.Tick != b.ChangedTick() {
		t.Errorf("shift tick %d != buffer tick %d", s.Tick, b.ChangedTick())
	}

	lines, _ := b.GetLines(0, -1, false)
	want := []string{"line1", "line5", "line6", "line3", "line4"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("expected %v, got %v", want, lines)
	}
}

func TestShiftListenerOrder(t *testing.T) {
	b := New()

	var order []int
	b.OnShift(ShiftFunc(func(Shift) { order = append(order, 1) }))
	b.OnShift(ShiftFunc(func(Shift) { order = append(order, 2) }))

	if err := b.SetLines(0, -1, false, []string{"x"}); err != nil {
		t.Fatalf("SetLines failed: %v", err)
	}

	if !reflect.DeepEqual(order, []int{1, 2}) {
		t.Errorf("listeners ran out of order: %v", order)
	}
}

func TestShiftLine(t *testing.T) {
	tests := []struct {
		name    string
		line    int
		atLine  int
		delta   int
		want    int
	}{
		{"before change untouched", 2, 5, 3, 2},
		{"after insert moves down", 5, 3, 2, 7},
		{"after delete moves up", 10, 3, -2, 8},
		{"inside deleted span snaps to first", 4, 3, -3, 3},
		{"floored at line 1", 1, 1, -5, 1},
		{"at change line shifts", 3, 3, 1, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShiftLine(tt.line, tt.atLine, tt.delta); got != tt.want {
				t.Errorf("ShiftLine(%d, %d, %d) = %d, want %d",
					tt.line, tt.atLine, tt.delta, got, tt.want)
			}
		})
	}
}

func TestBufferIdentity(t *testing.T) {
	a := New()
	b := New()

	if a.ID() == "" {
		t.Error("buffer should have an identity")
	}
	if a.ID() == b.ID() {
		t.Error("two buffers must not share an identity")
	}
}

func TestInfo(t *testing.T) {
	b := NewFromLines([]string{"a", "b"}, WithHandle(3), WithName("test.txt"))

	info := b.Info()
	if info.Handle != 3 {
		t.Errorf("expected handle 3, got %d", info.Handle)
	}
	if info.Name != "test.txt" {
		t.Errorf("expected name test.txt, got %q", info.Name)
	}
	if info.LineCount != 2 {
		t.Errorf("expected 2 lines, got %d", info.LineCount)
	}
	if !info.Modifiable || info.ReadOnly || !info.Listed {
		t.Errorf("unexpected flags: %+v", info)
	}
}

func TestScratchBufferUnlisted(t *testing.T) {
	b := New(WithType(TypeScratch))
	if b.IsListed() {
		t.Error("scratch buffer should be unlisted")
	}
	if b.Type().String() != "scratch" {
		t.Errorf("expected scratch, got %q", b.Type().String())
	}
}
