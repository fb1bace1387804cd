package render

// TicksPerByte is the number of clock ticks covered by one output byte.
const TicksPerByte = 50

// lookahead is how many bytes each write fills ahead of the tick position.
const lookahead = 5

// OutputBuffer paces writes on a tick clock. Every write advances the clock
// by the cost of the transition from the previous output kind and fills the
// next lookahead bytes with the level, so a later write overwrites most of
// what an earlier one wrote ahead.
type OutputBuffer struct {
	buf  []byte
	pos  int // ticks
	prev int // kind of the previous write
}

// Write outputs the low nibble of level as an unsigned 8-bit sample.
func (o *OutputBuffer) Write(kind int, level byte) {
	o.pos += timetable[o.prev][kind]
	o.prev = kind
	at := o.pos / TicksPerByte
	if need := at + lookahead; need > len(o.buf) {
		o.buf = append(o.buf, make([]byte, need-len(o.buf))...)
	}
	v := (level & 15) * 16
	for k := 0; k < lookahead; k++ {
		o.buf[at+k] = v
	}
}

// Ticks returns the clock position.
func (o *OutputBuffer) Ticks() int { return o.pos }

// Len returns the number of completed bytes.
func (o *OutputBuffer) Len() int { return o.pos / TicksPerByte }

// Bytes returns the completed samples. Bytes written ahead of the clock are
// not included.
func (o *OutputBuffer) Bytes() []byte {
	return o.buf[:o.Len():o.Len()]
}
