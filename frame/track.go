// Package frame expands phonemes into 10 ms parameter frames and blends the
// transitions between them.
package frame

import (
	"errors"
	"fmt"
	"strings"
)

// Capacity is the number of frames a Track holds.
const Capacity = 256

// ErrCapacityExceeded is returned when a breath group expands to more frames
// than a Track can hold.
var ErrCapacityExceeded = errors.New("frame track capacity exceeded")

// Track is the per-frame synthesis parameter table. Indexes are bytes so
// every read and write wraps inside the fixed storage the way the 8-bit
// original does.
type Track struct {
	Pitch     [Capacity]byte
	Freq1     [Capacity]byte
	Freq2     [Capacity]byte
	Freq3     [Capacity]byte
	Amp1      [Capacity]byte
	Amp2      [Capacity]byte
	Amp3      [Capacity]byte
	Consonant [Capacity]byte // sampled consonant flag
}

// quantity identifies one of the interpolated rows of a Track.
type quantity int

const (
	qPitch quantity = iota
	qFreq1
	qFreq2
	qFreq3
	qAmp1
	qAmp2
	qAmp3
)

func (t *Track) row(q quantity) *[Capacity]byte {
	switch q {
	case qPitch:
		return &t.Pitch
	case qFreq1:
		return &t.Freq1
	case qFreq2:
		return &t.Freq2
	case qFreq3:
		return &t.Freq3
	case qAmp1:
		return &t.Amp1
	case qAmp2:
		return &t.Amp2
	case qAmp3:
		return &t.Amp3
	}
	panic(fmt.Sprintf("frame: unknown quantity %d", q))
}

// Dump formats the first n frames as a table, one frame per line.
func (t *Track) Dump(n int) string {
	var sb strings.Builder
	sb.WriteString(" idx pitch f1 f2 f3 a1 a2 a3 flag\n")
	for i := 0; i < n && i < Capacity; i++ {
		fmt.Fprintf(&sb, "%4d %5d %2d %2d %2d %2d %2d %2d %4d\n", i,
			t.Pitch[i], t.Freq1[i], t.Freq2[i], t.Freq3[i],
			t.Amp1[i], t.Amp2[i], t.Amp3[i], t.Consonant[i])
	}
	return sb.String()
}
