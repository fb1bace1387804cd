// Package sam synthesizes speech from phonetic transcriptions the way the
// classic 8-bit Software Automatic Mouth did, byte for byte.
package sam

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/ieee0824/sam-go/audio"
	"github.com/ieee0824/sam-go/config"
	"github.com/ieee0824/sam-go/frame"
	"github.com/ieee0824/sam-go/phoneme"
	"github.com/ieee0824/sam-go/render"
)

// Synthesizer converts phonetic input to PCM for one voice. It holds no
// per-call state and may be used from several goroutines.
type Synthesizer struct {
	Voice  config.Voice
	Table  *frame.FormantTable // derived from Voice unless set by WithFormantTable
	logger *log.Logger
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithVoice sets the voice parameters.
func WithVoice(v config.Voice) Option {
	return func(s *Synthesizer) {
		s.Voice = v
	}
}

// WithLogger enables debug dumps of the phoneme table and frame track.
func WithLogger(l *log.Logger) Option {
	return func(s *Synthesizer) {
		s.logger = l
	}
}

// WithFormantTable shares a prebuilt formant table instead of deriving one
// from the voice.
func WithFormantTable(t *frame.FormantTable) Option {
	return func(s *Synthesizer) {
		s.Table = t
	}
}

// New creates a Synthesizer with the default voice unless overridden.
func New(opts ...Option) (*Synthesizer, error) {
	s := &Synthesizer{Voice: config.Default()}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.Voice.Validate(); err != nil {
		return nil, fmt.Errorf("invalid voice: %w", err)
	}
	if s.Table == nil {
		s.Table = frame.NewFormantTable(s.Voice.Mouth, s.Voice.Throat)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	return s, nil
}

// Synthesize returns unsigned 8-bit mono PCM at audio.SampleRate for input.
func (s *Synthesizer) Synthesize(input string) ([]byte, error) {
	buf, err := phoneme.Convert([]byte(input))
	if err != nil {
		return nil, err
	}
	s.logger.Debug("phonemes", "input", input, "count", buf.Len(), "table", "\n"+buf.Dump())

	fs := &frame.Synthesizer{Table: s.Table, Pitch: s.Voice.Pitch, Sing: s.Voice.Sing}
	r := render.New(s.Voice.Speed)
	var track frame.Track
	for i, group := range buf.Groups() {
		if len(group) == 0 {
			continue
		}
		total, err := fs.Build(&track, group)
		if err != nil {
			return nil, fmt.Errorf("breath group %d: %w", i, err)
		}
		s.logger.Debug("frames", "group", i, "total", total, "track", "\n"+track.Dump(total))
		r.Render(&track, total)
	}
	out := r.Bytes()
	s.logger.Debug("rendered", "bytes", len(out), "ticks", r.Ticks())
	return out, nil
}

// SynthesizeWAV writes input as a WAV stream to w.
func (s *Synthesizer) SynthesizeWAV(w io.WriteSeeker, input string) error {
	pcm, err := s.Synthesize(input)
	if err != nil {
		return err
	}
	return audio.WriteWAV(w, pcm)
}

// SynthesizeAll runs one independent pipeline per input and returns the
// results in input order. The first error cancels the remaining work.
func (s *Synthesizer) SynthesizeAll(ctx context.Context, inputs []string) ([][]byte, error) {
	out := make([][]byte, len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			pcm, err := s.Synthesize(in)
			if err != nil {
				return fmt.Errorf("input %d: %w", i, err)
			}
			out[i] = pcm
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
