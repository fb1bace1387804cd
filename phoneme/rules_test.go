package phoneme

import (
	"bytes"
	"strings"
	"testing"
)

func mustParse(t *testing.T, s string) *Buffer {
	t.Helper()
	b, err := Parse([]byte(s))
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", s, err)
	}
	return b
}

func build(entries ...Entry) *Buffer {
	b := &Buffer{}
	for _, e := range entries {
		b.Append(e.Index, e.Length, e.Stress)
	}
	return b
}

func TestRewrite(t *testing.T) {
	tests := []struct {
		input string
		want  []byte
	}{
		{"UL", []byte{AX, LX}}, // the inserted L follows a vowel
		{"UM", []byte{AX, M}},
		{"UN", []byte{AX, N}},
		{"TR", []byte{CH, CH + 1, R}},
		{"DR", []byte{J, J + 1, R}},
		{"AAR", []byte{9, RX}},
		{"AAL", []byte{9, LX}},
		{"EY", []byte{48, YX}},
		{"OW", []byte{52, WX}},
		{"KAA", []byte{K, 9}},
		{"KOW", []byte{KX, 52, WX}},
		{"GAA", []byte{G, 9}},
		{"GOW", []byte{GX, 52, WX}},
		{"SP", []byte{S, 54}},
		{"ST", []byte{S, D}},
		{"CH", []byte{CH, CH + 1}},
		{"J", []byte{J, J + 1}},
		{"NUW", []byte{N, UX, WX}},
		{"AATAX", []byte{9, DX, AX}},
		{"AA5 AA5", []byte{9, Pause, Q, 9}},
	}
	for _, tt := range tests {
		b := mustParse(t, tt.input)
		if err := rewrite(b); err != nil {
			t.Fatalf("rewrite(%q) error: %v", tt.input, err)
		}
		got := ids(b)
		ok := len(got) == len(tt.want)
		for i := 0; ok && i < len(got); i++ {
			ok = got[i] == tt.want[i]
		}
		if !ok {
			t.Errorf("rewrite(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestCopyStress(t *testing.T) {
	b := mustParse(t, "LAA5")
	copyStress(b)
	if b.Stress[0] != 6 {
		t.Errorf("L stress = %d, want 6", b.Stress[0])
	}
	if b.Stress[1] != 5 {
		t.Errorf("AA stress = %d, want 5", b.Stress[1])
	}

	b = mustParse(t, "LAA")
	copyStress(b)
	if b.Stress[0] != 0 {
		t.Errorf("unstressed: L stress = %d, want 0", b.Stress[0])
	}
}

func TestSetLengths(t *testing.T) {
	b := mustParse(t, "AA AA5")
	setLengths(b)
	if b.Length[0] != 0xB {
		t.Errorf("unstressed AA = %d, want 11", b.Length[0])
	}
	if b.Length[2] != 0xF {
		t.Errorf("stressed AA = %d, want 15", b.Length[2])
	}
}

func TestLengthenBeforePunctuation(t *testing.T) {
	b := mustParse(t, " AAN.")
	setLengths(b)
	before := b.Length
	lengthenBeforePunctuation(b)
	for _, i := range []int{1, 2} {
		if b.Length[i] <= before[i] {
			t.Errorf("Length[%d] = %d, want > %d", i, b.Length[i], before[i])
		}
	}
	if b.Length[1] != 17 {
		t.Errorf("AA = %d, want 17", b.Length[1])
	}
	if b.Length[2] != 11 {
		t.Errorf("N = %d, want 11", b.Length[2])
	}
	if b.Length[3] != before[3] {
		t.Errorf("punctuation length changed: %d", b.Length[3])
	}
}

func TestLengthenSkipsLeadingPunctuation(t *testing.T) {
	b := mustParse(t, ".AA")
	setLengths(b)
	lengthenBeforePunctuation(b)
	if b.Length[1] != 0xB {
		t.Errorf("AA = %d, want 11", b.Length[1])
	}
}

func TestAdjustLengths(t *testing.T) {
	tests := []struct {
		input string
		pos   int
		want  byte
	}{
		{"AAT", 0, 10},   // vowel before unvoiced plosive loses an eighth
		{"AAZ", 0, 14},   // vowel before voiced consonant gains a quarter plus one
		{"NT", 0, 5},     // nasal before stop
		{"NT", 1, 6},     // the stop itself
		{"BD", 0, 4},     // stop before stop: 6/2+1
		{"BD", 1, 3},     // 5/2+1
		{"R", 0, 5},      // liquid loses two frames
		{"AARXN", 0, 10}, // vowel before RX and a consonant
	}
	for _, tt := range tests {
		b := mustParse(t, tt.input)
		setLengths(b)
		adjustLengths(b)
		if b.Length[tt.pos] != tt.want {
			t.Errorf("%q Length[%d] = %d, want %d", tt.input, tt.pos, b.Length[tt.pos], tt.want)
		}
	}
}

func TestExpandStops(t *testing.T) {
	b := mustParse(t, "T")
	if err := expandStops(b); err != nil {
		t.Fatal(err)
	}
	equalIDs(t, ids(b), []byte{T, T + 1, T + 2})
	if b.Length[1] != 2 || b.Length[2] != 2 {
		t.Errorf("release lengths = %d,%d, want 2,2", b.Length[1], b.Length[2])
	}

	b = mustParse(t, "T/H")
	if err := expandStops(b); err != nil {
		t.Fatal(err)
	}
	equalIDs(t, ids(b), []byte{T, HH})

	b = mustParse(t, "B/H")
	if err := expandStops(b); err != nil {
		t.Fatal(err)
	}
	equalIDs(t, ids(b), []byte{54, 55, 56, HH})
}

func TestPruneInvalid(t *testing.T) {
	b := build(Entry{Index: 9}, Entry{Index: 90}, Entry{Index: 9})
	pruneInvalid(b)
	if b.Len() != 1 {
		t.Errorf("Len = %d, want 1", b.Len())
	}
}

func TestInsertBreathAtLastPause(t *testing.T) {
	b := build(
		Entry{Index: 9, Length: 80},
		Entry{Index: Pause},
		Entry{Index: 9, Length: 80},
		Entry{Index: 9, Length: 80},
	)
	if err := insertBreath(b); err != nil {
		t.Fatalf("insertBreath error: %v", err)
	}
	equalIDs(t, ids(b), []byte{9, Q, Break, 9, 9})
	if b.Length[1] != 4 {
		t.Errorf("glottal stop length = %d, want 4", b.Length[1])
	}
}

func TestInsertBreathAfterPunctuation(t *testing.T) {
	b := build(Entry{Index: 9, Length: 10}, Entry{Index: Period, Length: 18}, Entry{Index: 9, Length: 10})
	if err := insertBreath(b); err != nil {
		t.Fatalf("insertBreath error: %v", err)
	}
	equalIDs(t, ids(b), []byte{9, Period, Break, 9})
}

func TestInsertBreathWithoutPause(t *testing.T) {
	b := build(Entry{Index: 9, Length: 120}, Entry{Index: 9, Length: 120})
	if err := insertBreath(b); err != nil {
		t.Fatalf("insertBreath error: %v", err)
	}
	equalIDs(t, ids(b), []byte{9, Q, Break, 9})
	if b.Length[1] != 4 || b.Length[3] != 120 {
		t.Errorf("lengths = %v, want glottal stop 4 and the vowel kept", b.Length[:4])
	}
}

func TestInsertBreathSinglePhonemeOverThreshold(t *testing.T) {
	b := build(Entry{Index: 9, Length: 240}, Entry{Index: 9, Length: 10})
	if err := insertBreath(b); err != nil {
		t.Fatalf("insertBreath error: %v", err)
	}
	equalIDs(t, ids(b), []byte{9, 9})
}

func TestConvertLongWordWithoutSpaces(t *testing.T) {
	b, err := Convert([]byte(strings.Repeat("AA", 22)))
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}
	// 21 vowels of 11 frames stay under the threshold, the 22nd crosses it
	want := bytes.Repeat([]byte{9}, 21)
	want = append(want, Q, Break, 9)
	equalIDs(t, ids(b), want)

	groups := b.Groups()
	if len(groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(groups))
	}
	for i, g := range groups {
		frames := 0
		for _, e := range g {
			frames += int(e.Length)
		}
		if frames > Capacity {
			t.Errorf("group %d spans %d frames", i, frames)
		}
	}
}

func TestConvertAssignsDurations(t *testing.T) {
	b, err := Convert([]byte("/HAALAOAO "))
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}
	for i := 0; i < b.Len(); i++ {
		if b.Index[i] != Pause && b.Index[i] != Break && b.Length[i] == 0 {
			t.Errorf("entry %d (%s) has zero length", i, Name(b.Index[i]))
		}
	}
}

func TestConvertIsDeterministic(t *testing.T) {
	a, err := Convert([]byte("DHIHS IHZ AH5 TEHST."))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Convert([]byte("DHIHS IHZ AH5 TEHST."))
	if err != nil {
		t.Fatal(err)
	}
	if *a != *b {
		t.Error("Convert results differ")
	}
}
