package frame

import "github.com/ieee0824/sam-go/phoneme"

// window describes the frames rewritten around one phoneme boundary.
type window struct {
	start  byte // first frame, inclusive
	end    byte // frame whose value is the blend target
	length byte // outLen + inLen
}

// blendWindow picks the transition lengths for the boundary between cur and
// next, which sits at frame boundary. The phoneme with the lower rank owns
// both lengths; equal ranks use each side's out length.
func blendWindow(cur, next, boundary byte) window {
	rank, nextRank := blendRank[cur], blendRank[next]
	var before, after byte
	switch {
	case rank == nextRank:
		before, after = outBlendLength[cur], outBlendLength[next]
	case rank < nextRank:
		before, after = inBlendLength[next], outBlendLength[next]
	default:
		// in and out are swapped on this side
		before, after = outBlendLength[cur], inBlendLength[cur]
	}
	return window{
		start:  boundary - before,
		end:    boundary + after,
		length: before + after,
	}
}

// blend overwrites the frames around every boundary with interpolated
// values and returns the total number of frames.
func blend(t *Track, entries []phoneme.Entry) int {
	if len(entries) == 0 {
		return 0
	}
	var boundary byte
	total := 0
	for pos := 0; pos+1 < len(entries); pos++ {
		cur, next := entries[pos], entries[pos+1]
		boundary += cur.Length
		total += int(cur.Length)
		w := blendWindow(cur.Index, next.Index, boundary)
		if (w.length-2)&0x80 != 0 {
			continue
		}
		blendPitch(t, cur.Length, next.Length, boundary, w.start)
		for q := qFreq1; q <= qAmp3; q++ {
			row := t.row(q)
			interpolate(row, w.length, w.start, int8(row[w.end]-row[w.start]))
		}
	}
	return total + int(entries[len(entries)-1].Length)
}

// blendPitch interpolates pitch from the middle of the current phoneme to
// the middle of the next one, starting the ramp at frame start.
func blendPitch(t *Track, curLen, nextLen, boundary, start byte) {
	curHalf, nextHalf := curLen/2, nextLen/2
	width := curHalf + nextHalf
	if width == 0 {
		return
	}
	delta := int8(t.Pitch[boundary+nextHalf] - t.Pitch[boundary-curHalf])
	interpolate(&t.Pitch, width, start, delta)
}

// interpolate spreads delta over the width-1 frames after frame using
// integer steps. The remainder is accumulated and carried as a single unit
// step whenever it reaches width. A rising ramp never leaves zero.
func interpolate(row *[Capacity]byte, width, frame byte, delta int8) {
	negative := delta < 0
	mag := int(delta)
	if negative {
		mag = -mag
	}
	rem := byte(mag % int(width))
	div := byte(int(delta) / int(width))

	var acc byte
	val := row[frame] + div
	for n := width - 1; n != 0; n-- {
		acc += rem
		if acc >= width {
			acc -= width
			if negative {
				val--
			} else if val != 0 {
				val++
			}
		}
		frame++
		row[frame] = val
		val += div
	}
}
