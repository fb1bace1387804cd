package frame

import (
	"fmt"

	"github.com/ieee0824/sam-go/phoneme"
)

const (
	// inflectionSpan is how far back, in frames, a pitch glide starts.
	inflectionSpan = 30
	// holdPitch marks frames the inflection scan steps over.
	holdPitch = 127
)

// Synthesizer turns breath groups into frame tracks for one voice.
type Synthesizer struct {
	Table *FormantTable
	Pitch byte
	Sing  bool
}

// Build expands entries into t, blends every phoneme boundary and applies the
// pitch contour and amplitude rescale. It returns the number of frames the
// renderer should walk. t is not cleared first; frames past the returned
// count keep whatever an earlier group left there.
func (s *Synthesizer) Build(t *Track, entries []phoneme.Entry) (int, error) {
	if err := s.expand(t, entries); err != nil {
		return 0, err
	}
	total := blend(t, entries)
	s.post(t, total)
	return total, nil
}

// expand writes each phoneme's row into length consecutive frames, gliding
// the pitch before terminal punctuation.
func (s *Synthesizer) expand(t *Track, entries []phoneme.Entry) error {
	x := 0
	for i, e := range entries {
		switch e.Index {
		case phoneme.Period:
			addInflection(t, x, 1)
		case phoneme.Question:
			addInflection(t, x, 255)
		}
		if e.Length == 0 {
			return fmt.Errorf("phoneme %d (%s) has zero length: %w", i, phoneme.Name(e.Index), ErrCapacityExceeded)
		}
		if x+int(e.Length) > Capacity {
			return fmt.Errorf("phoneme %d (%s) ends at frame %d: %w", i, phoneme.Name(e.Index), x+int(e.Length), ErrCapacityExceeded)
		}
		pitch := s.Pitch + stressPitch[(e.Stress+1)%byte(len(stressPitch))]
		id := e.Index
		for n := byte(0); n < e.Length; n++ {
			t.Freq1[x] = s.Table.Mouth[id]
			t.Freq2[x] = s.Table.Throat[id]
			t.Freq3[x] = freq3[id]
			t.Amp1[x] = ampl1[id]
			t.Amp2[x] = ampl2[id]
			t.Amp3[x] = ampl3[id]
			t.Consonant[x] = sampledConsonantFlags[id]
			t.Pitch[x] = pitch
			x++
		}
	}
	return nil
}

// addInflection adds step to the pitch of the frames leading up to end,
// starting at most inflectionSpan frames back. A step of 1 lowers the tone
// (pitch is a period) and 255 raises it.
func addInflection(t *Track, end int, step byte) {
	start := end - inflectionSpan
	if start < 0 {
		start = 0
	}
	// skip leading frames that hold the sentinel pitch
	for start < end && t.Pitch[start] == holdPitch {
		start++
	}
	if start == end {
		return
	}
	a := t.Pitch[start]
	for start != end {
		a += step
		t.Pitch[start] = a
		// frames already at 255 are stepped over untouched
		for start++; start != end && t.Pitch[start] == 255; start++ {
		}
	}
}

// post removes the formant-induced pitch wobble unless singing and maps the
// amplitudes onto the output level. Only frames below total are touched; the
// renderer never reads past total.
func (s *Synthesizer) post(t *Track, total int) {
	for i := 0; i < total && i < Capacity; i++ {
		if !s.Sing {
			t.Pitch[i] -= t.Freq1[i] >> 1
		}
		t.Amp1[i] = amplitudeRescale[t.Amp1[i]]
		t.Amp2[i] = amplitudeRescale[t.Amp2[i]]
		t.Amp3[i] = amplitudeRescale[t.Amp3[i]]
	}
}
