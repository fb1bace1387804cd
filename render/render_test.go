package render

import (
	"bytes"
	"testing"

	"github.com/ieee0824/sam-go/frame"
)

func TestOutputBufferPacing(t *testing.T) {
	var o OutputBuffer
	o.Write(kindOscillator, 3)
	o.Write(kindOscillator, 0x1F)
	if o.Ticks() != 324 {
		t.Fatalf("Ticks = %d, want 324", o.Ticks())
	}
	got := o.Bytes()
	want := []byte{0, 0, 0, 48, 48, 48}
	if !bytes.Equal(got, want) {
		t.Errorf("Bytes = %v, want %v", got, want)
	}
	// the look-ahead beyond the clock holds the latest level
	if o.buf[6] != 0xF0 || len(o.buf) != 11 {
		t.Errorf("look-ahead = %v", o.buf[6:])
	}
}

func TestOutputBufferTransitionCost(t *testing.T) {
	var o OutputBuffer
	o.Write(kindVoicedHigh, 26)
	o.Write(kindVoicedLow, 6)
	// 127 from the oscillator kind, then 55 from high to low
	if o.Ticks() != 182 {
		t.Errorf("Ticks = %d, want 182", o.Ticks())
	}
}

func silentTrack(frames int) *frame.Track {
	var tr frame.Track
	for i := 0; i < frames; i++ {
		tr.Pitch[i] = 64
	}
	return &tr
}

func TestRenderSilentLength(t *testing.T) {
	r := New(72)
	r.Render(silentTrack(3), 3)
	// 72 calls for the first frame, 72 per frame after it, 162 ticks each
	wantTicks := (72 + 2*72) * 162
	if r.Ticks() != wantTicks {
		t.Fatalf("Ticks = %d, want %d", r.Ticks(), wantTicks)
	}
	out := r.Bytes()
	if len(out) != wantTicks/TicksPerByte {
		t.Fatalf("len = %d, want %d", len(out), wantTicks/TicksPerByte)
	}
	for i, b := range out[3:] {
		if b != 0x80 {
			t.Fatalf("byte %d = %#x, want 0x80", i+3, b)
		}
	}
}

func TestRenderSpeedScalesLength(t *testing.T) {
	slow, fast := New(100), New(50)
	slow.Render(silentTrack(5), 5)
	fast.Render(silentTrack(5), 5)
	if len(slow.Bytes()) <= len(fast.Bytes()) {
		t.Errorf("speed 100 gave %d bytes, speed 50 gave %d", len(slow.Bytes()), len(fast.Bytes()))
	}
}

func TestRenderConsonantSlot(t *testing.T) {
	tr := silentTrack(4)
	tr.Consonant[0] = 0xF1
	tr.Consonant[1] = 0xF1
	r := New(72)
	r.Render(tr, 2)
	out := r.Bytes()
	if len(out) == 0 {
		t.Fatal("no output for sampled consonant")
	}
	for i, b := range out[3:] {
		if b != 0x50 && b != 0x80 {
			t.Fatalf("byte %d = %#x, want a noise level", i+3, b)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	ft := frame.NewFormantTable(128, 128)
	var tr frame.Track
	for i := 0; i < 20; i++ {
		tr.Pitch[i] = 60
		tr.Freq1[i] = ft.Mouth[9]
		tr.Freq2[i] = ft.Throat[9]
		tr.Freq3[i] = 0x59
		tr.Amp1[i], tr.Amp2[i], tr.Amp3[i] = 15, 13, 1
	}
	tr.Consonant[10], tr.Consonant[11] = 0xE2, 0xE2
	a, b := New(72), New(72)
	a.Render(&tr, 20)
	b.Render(&tr, 20)
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("renders differ")
	}
	if a.Ticks()/TicksPerByte != len(a.Bytes()) {
		t.Errorf("len = %d, want ticks/50 = %d", len(a.Bytes()), a.Ticks()/TicksPerByte)
	}
}

func TestTables(t *testing.T) {
	if sinus[0] != 0 || sinus[64] != 0x70 || sinus[192] != 0x90 {
		t.Errorf("sinus = %#x %#x %#x", sinus[0], sinus[64], sinus[192])
	}
	// -7 * 15 / 2 rounds toward minus infinity
	if got := multtable[0x90|15]; got != byte(0xCB) {
		t.Errorf("multtable[0x9F] = %#x, want 0xcb", got)
	}
	if got := multtable[0x70|15]; got != 52 {
		t.Errorf("multtable[0x7F] = %d, want 52", got)
	}
}

func TestVoicedSampleOffsetRestartsEachWalk(t *testing.T) {
	// frame 0 is a voiced sampled consonant, so the walk plays from the
	// voiced table before anything else
	tr := silentTrack(4)
	tr.Consonant[0] = 2

	fresh := New(72)
	fresh.Render(tr, 4)

	continued := New(72)
	continued.Render(tr, 4)
	continued.Render(tr, 4)

	if continued.voicedOffset != fresh.voicedOffset {
		t.Errorf("voicedOffset after second walk = %d, want %d", continued.voicedOffset, fresh.voicedOffset)
	}
}
