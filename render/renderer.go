// Package render turns a frame track into unsigned 8-bit PCM by driving an
// additive oscillator from a glottal pulse counter and pacing the samples on
// a fixed tick clock.
package render

import "github.com/ieee0824/sam-go/frame"

// firstFrameCalls is the number of oscillator calls spent on the first frame
// regardless of speed.
const firstFrameCalls = 72

// Renderer renders consecutive frame tracks into one output buffer. The
// clock carries over between calls to Render.
type Renderer struct {
	speed byte
	out   OutputBuffer
	// offset into the voiced sample table, kept between samples of one walk
	voicedOffset byte
}

// New returns a Renderer. speed is the number of oscillator calls per frame
// and must not be zero.
func New(speed byte) *Renderer {
	return &Renderer{speed: speed}
}

// Bytes returns the PCM produced so far.
func (r *Renderer) Bytes() []byte { return r.out.Bytes() }

// Ticks returns the output clock position.
func (r *Renderer) Ticks() int { return r.out.Ticks() }

// Render walks the first total frames of t.
func (r *Renderer) Render(t *frame.Track, total int) {
	r.voicedOffset = 0
	var (
		y                      byte
		phase1, phase2, phase3 byte
	)
	calls := byte(firstFrameCalls)
	pulse := t.Pitch[0]
	voiced := pulse - pulse>>2

	for total > 0 {
		flags := t.Consonant[y]
		if flags&0xF8 != 0 {
			// unvoiced samples take a fixed two-frame slot
			r.sample(t, flags, y)
			y += 2
			total -= 2
			calls = r.speed
		} else {
			r.combine(t, phase1, phase2, phase3, y)
			calls--
			if calls == 0 {
				y++
				total--
				if total == 0 {
					return
				}
				calls = r.speed
			}
			pulse--
			if pulse != 0 {
				voiced--
				if voiced != 0 || flags == 0 {
					phase1 += t.Freq1[y]
					phase2 += t.Freq2[y]
					phase3 += t.Freq3[y]
					continue
				}
				// voiced consonants interleave the sample with the pulse
				r.sample(t, flags, y)
			}
		}
		// new glottal pulse: resync the formant oscillators
		pulse = t.Pitch[y]
		voiced = pulse - pulse>>2
		phase1, phase2, phase3 = 0, 0, 0
	}
}

// combine mixes the two sine formants and the rectangle formant of frame y
// and writes one oscillator sample.
func (r *Renderer) combine(t *frame.Track, p1, p2, p3, y byte) {
	v := uint(multtable[sinus[p1]|t.Amp1[y]])
	v += uint(multtable[sinus[p2]|t.Amp2[y]])
	if v > 255 {
		v++
	}
	v += uint(multtable[rectangle[p3]|t.Amp3[y]])
	v += 136
	v >>= 4
	r.out.Write(kindOscillator, byte(v&0xF))
}

// sample plays back a sampled consonant for frame y. The low three bits of
// flags pick the sample class.
func (r *Renderer) sample(t *frame.Track, flags, y byte) {
	class := int((flags&7)-1) % 5
	table := sampleTable[class*256 : (class+1)*256]

	if start := flags & 0xF8; start != 0 {
		for off := start ^ 0xFF; ; {
			bits := table[off]
			for n := 0; n < 8; n++ {
				if bits&0x80 != 0 {
					r.out.Write(kindNoiseHigh, 5)
				} else {
					r.out.Write(kindNoiseLow, noiseLevel[class])
				}
				bits <<= 1
			}
			off++
			if off == 0 {
				return
			}
		}
	}

	// voiced: the pitch picks how many bytes of the table are played
	off := r.voicedOffset
	for count := (t.Pitch[y] >> 4) ^ 0xFF; ; {
		bits := table[off]
		for n := 0; n < 8; n++ {
			if bits&0x80 != 0 {
				r.out.Write(kindVoicedHigh, 26)
			} else {
				r.out.Write(kindVoicedLow, 6)
			}
			bits <<= 1
		}
		off++
		count++
		if count == 0 {
			break
		}
	}
	r.voicedOffset = off
}
