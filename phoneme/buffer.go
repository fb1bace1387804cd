package phoneme

import (
	"errors"
	"fmt"
)

// Capacity is the size of each parallel array of a Buffer.
const Capacity = 256

// maxActive is the number of entries a Buffer may hold. The two top slots
// stay reserved for the terminator, as in the fixed-size original.
const maxActive = Capacity - 2

// ErrCapacityExceeded is returned when a parse or an insertion would need
// more than the buffer can hold.
var ErrCapacityExceeded = errors.New("phoneme buffer capacity exceeded")

// Buffer holds a phoneme sequence as three parallel fixed-size arrays.
// Entries at or past Len read as the terminator.
type Buffer struct {
	Index  [Capacity]byte
	Length [Capacity]byte
	Stress [Capacity]byte
	n      int
}

// Len returns the number of active entries.
func (b *Buffer) Len() int { return b.n }

// At returns the id at i, or End when i is outside the active range.
func (b *Buffer) At(i int) byte {
	if i < 0 || i >= b.n {
		return End
	}
	return b.Index[i]
}

// StressAt returns the stress at i, zero outside the active range.
func (b *Buffer) StressAt(i int) byte {
	if i < 0 || i >= b.n {
		return 0
	}
	return b.Stress[i]
}

// Append adds an entry at the end.
func (b *Buffer) Append(id, length, stress byte) error {
	if b.n >= maxActive {
		return ErrCapacityExceeded
	}
	b.Index[b.n] = id
	b.Length[b.n] = length
	b.Stress[b.n] = stress
	b.n++
	return nil
}

// Insert places an entry at pos, shifting pos..Len-1 one slot up.
func (b *Buffer) Insert(pos int, id, length, stress byte) error {
	if pos < 0 || pos > b.n {
		return fmt.Errorf("insert at %d outside 0..%d", pos, b.n)
	}
	if b.n >= maxActive {
		return fmt.Errorf("insert %s at %d: %w", Name(id), pos, ErrCapacityExceeded)
	}
	copy(b.Index[pos+1:b.n+1], b.Index[pos:b.n])
	copy(b.Length[pos+1:b.n+1], b.Length[pos:b.n])
	copy(b.Stress[pos+1:b.n+1], b.Stress[pos:b.n])
	b.Index[pos] = id
	b.Length[pos] = length
	b.Stress[pos] = stress
	b.n++
	return nil
}

// Truncate drops every entry at or after n.
func (b *Buffer) Truncate(n int) {
	if n >= 0 && n < b.n {
		b.n = n
	}
}

// Entry is one row of a Buffer.
type Entry struct {
	Index  byte
	Length byte
	Stress byte
}

// Entries returns a copy of the active rows.
func (b *Buffer) Entries() []Entry {
	out := make([]Entry, b.n)
	for i := range out {
		out[i] = Entry{Index: b.Index[i], Length: b.Length[i], Stress: b.Stress[i]}
	}
	return out
}

// Groups splits the sequence at Break markers and drops pause fillers,
// yielding the phoneme lists rendered one after another.
func (b *Buffer) Groups() [][]Entry {
	var groups [][]Entry
	var cur []Entry
	for i := 0; i < b.n; i++ {
		switch id := b.Index[i]; id {
		case Break:
			groups = append(groups, cur)
			cur = nil
		case Pause:
		default:
			cur = append(cur, Entry{Index: id, Length: b.Length[i], Stress: b.Stress[i]})
		}
	}
	return append(groups, cur)
}
