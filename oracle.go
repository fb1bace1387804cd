package sam

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/ieee0824/sam-go/audio"
	"github.com/ieee0824/sam-go/config"
)

// ErrNoReference is returned by an Oracle that has no output for an input.
var ErrNoReference = errors.New("no reference output")

// Oracle supplies reference PCM produced by another implementation.
type Oracle interface {
	Reference(input string, v config.Voice) ([]byte, error)
}

// WAVOracle serves reference output recorded as WAV files with the default
// voice. Files maps each input to a path relative to Dir.
type WAVOracle struct {
	Dir   string
	Files map[string]string
}

// Reference implements Oracle.
func (o *WAVOracle) Reference(input string, v config.Voice) ([]byte, error) {
	name, ok := o.Files[input]
	if !ok || v != config.Default() {
		return nil, fmt.Errorf("%q: %w", input, ErrNoReference)
	}
	pcm, _, err := audio.ReadWAVFile(filepath.Join(o.Dir, name))
	if err != nil {
		return nil, fmt.Errorf("read reference for %q: %w", input, err)
	}
	return pcm, nil
}

// Mismatch describes the first difference from a reference.
type Mismatch struct {
	Offset    int // -1 when only the lengths differ
	Got, Want int // byte values, or lengths when Offset is -1
}

func (m *Mismatch) Error() string {
	if m.Offset < 0 {
		return fmt.Sprintf("length %d, reference has %d", m.Got, m.Want)
	}
	return fmt.Sprintf("byte %d is %#02x, reference has %#02x", m.Offset, m.Got, m.Want)
}

// Compare synthesizes input and checks it against the oracle. It returns a
// *Mismatch error when the output differs.
func (s *Synthesizer) Compare(o Oracle, input string) error {
	want, err := o.Reference(input, s.Voice)
	if err != nil {
		return err
	}
	got, err := s.Synthesize(input)
	if err != nil {
		return err
	}
	for i := 0; i < len(got) && i < len(want); i++ {
		if got[i] != want[i] {
			return &Mismatch{Offset: i, Got: int(got[i]), Want: int(want[i])}
		}
	}
	if len(got) != len(want) {
		return &Mismatch{Offset: -1, Got: len(got), Want: len(want)}
	}
	return nil
}
