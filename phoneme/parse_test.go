package phoneme

import (
	"errors"
	"strings"
	"testing"
)

func ids(b *Buffer) []byte {
	out := make([]byte, b.Len())
	copy(out, b.Index[:b.Len()])
	return out
}

func equalIDs(t *testing.T, got, want []byte) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("ids = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ids = %v, want %v", got, want)
		}
	}
}

func TestParseEmpty(t *testing.T) {
	b, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if b.Len() != 0 {
		t.Errorf("Len = %d, want 0", b.Len())
	}
	if b.At(0) != End {
		t.Errorf("At(0) = %d, want End", b.At(0))
	}
}

func TestParseWhitespaceOnlyYieldsPauses(t *testing.T) {
	b, err := Parse([]byte("   "))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	equalIDs(t, ids(b), []byte{Pause, Pause, Pause})
	for _, g := range b.Groups() {
		if len(g) != 0 {
			t.Errorf("group = %v, want empty", g)
		}
	}
}

func TestParseStressAttachesToPrevious(t *testing.T) {
	b, err := Parse([]byte("AA5"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if b.Len() != 1 {
		t.Fatalf("Len = %d, want 1", b.Len())
	}
	if b.Index[0] != 9 {
		t.Errorf("Index[0] = %d, want 9 (AA)", b.Index[0])
	}
	if b.Stress[0] != 5 {
		t.Errorf("Stress[0] = %d, want 5", b.Stress[0])
	}
}

func TestParseTwoLetterBeforeOneLetter(t *testing.T) {
	b, err := Parse([]byte("/HAALAOAO "))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	equalIDs(t, ids(b), []byte{HH, 9, L, 11, 11, Pause})
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input  string
		b      byte
		offset int
	}{
		{"AA9", '9', 2},
		{"5AA", '5', 0},
		{"aa", 'a', 0},
		{"IY!", '!', 2},
	}
	for _, tt := range tests {
		_, err := Parse([]byte(tt.input))
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("Parse(%q) error = %v, want ParseError", tt.input, err)
			continue
		}
		if pe.Byte != tt.b || pe.Offset != tt.offset {
			t.Errorf("Parse(%q) = %q@%d, want %q@%d", tt.input, pe.Byte, pe.Offset, tt.b, tt.offset)
		}
	}
}

func TestParseCapacity(t *testing.T) {
	if _, err := Parse([]byte(strings.Repeat("S", maxActive))); err != nil {
		t.Fatalf("Parse(%d) error: %v", maxActive, err)
	}
	_, err := Parse([]byte(strings.Repeat("S", maxActive+1)))
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("Parse(%d) error = %v, want ErrCapacityExceeded", maxActive+1, err)
	}
}

func TestBufferInsertShiftsTail(t *testing.T) {
	b := &Buffer{}
	for _, id := range []byte{1, 2, 3} {
		if err := b.Append(id, id*10, 0); err != nil {
			t.Fatal(err)
		}
	}
	if err := b.Insert(1, 9, 90, 4); err != nil {
		t.Fatalf("Insert error: %v", err)
	}
	equalIDs(t, ids(b), []byte{1, 9, 2, 3})
	if b.Length[2] != 20 || b.Length[3] != 30 {
		t.Errorf("lengths = %v, want shifted tail", b.Length[:4])
	}
	if b.Stress[1] != 4 {
		t.Errorf("Stress[1] = %d, want 4", b.Stress[1])
	}
}

func TestBufferInsertCapacity(t *testing.T) {
	b := &Buffer{}
	for i := 0; i < maxActive; i++ {
		if err := b.Append(S, 2, 0); err != nil {
			t.Fatal(err)
		}
	}
	err := b.Insert(10, T, 0, 0)
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("Insert error = %v, want ErrCapacityExceeded", err)
	}
	if b.Len() != maxActive || b.Index[10] != S {
		t.Errorf("buffer modified by failed insert")
	}
}

func TestGroups(t *testing.T) {
	b := &Buffer{}
	for _, id := range []byte{9, Pause, Period, Break, 9} {
		b.Append(id, 1, 0)
	}
	g := b.Groups()
	if len(g) != 2 {
		t.Fatalf("groups = %d, want 2", len(g))
	}
	if len(g[0]) != 2 || g[0][1].Index != Period {
		t.Errorf("group 0 = %v, want AA .", g[0])
	}
	if len(g[1]) != 1 || g[1][0].Index != 9 {
		t.Errorf("group 1 = %v, want AA", g[1])
	}
}

func TestName(t *testing.T) {
	if got := Name(HH); got != "/H" {
		t.Errorf("Name(HH) = %q, want /H", got)
	}
	if got := Name(200); got != "??" {
		t.Errorf("Name(200) = %q, want ??", got)
	}
}
