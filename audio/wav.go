// Package audio reads and writes the unsigned 8-bit mono WAV files the
// synthesizer produces.
package audio

import (
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// SampleRate is the playback rate of synthesized PCM.
const SampleRate = 22050

// WriteWAV encodes unsigned 8-bit mono samples as a WAV stream.
func WriteWAV(w io.WriteSeeker, pcm []byte) error {
	data := make([]int, len(pcm))
	for i, b := range pcm {
		data[i] = int(b)
	}
	enc := wav.NewEncoder(w, SampleRate, 8, 1, 1)
	buf := &goaudio.IntBuffer{
		Data:           data,
		Format:         &goaudio.Format{SampleRate: SampleRate, NumChannels: 1},
		SourceBitDepth: 8,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encode wav: %w", err)
	}
	return enc.Close()
}

// WriteWAVFile creates path and writes pcm to it.
func WriteWAVFile(path string, pcm []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteWAV(f, pcm); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WAVHeader holds the parsed RIFF/WAV header fields.
type WAVHeader struct {
	SampleRate    uint32
	BitsPerSample uint16
	NumChannels   uint16
	NumSamples    int
}

// ReadWAV reads a WAV stream and returns its raw unsigned 8-bit samples.
// It returns an error if the format is not 8-bit PCM mono at SampleRate.
func ReadWAV(r io.ReadSeeker) ([]byte, WAVHeader, error) {
	d := wav.NewDecoder(r)
	d.ReadInfo()
	if err := d.Err(); err != nil {
		return nil, WAVHeader{}, fmt.Errorf("read header: %w", err)
	}
	header := WAVHeader{
		SampleRate:    d.SampleRate,
		BitsPerSample: d.BitDepth,
		NumChannels:   d.NumChans,
	}
	if d.WavAudioFormat != 1 {
		return nil, header, fmt.Errorf("unsupported audio format %d (only PCM=1 supported)", d.WavAudioFormat)
	}
	if header.NumChannels != 1 {
		return nil, header, fmt.Errorf("unsupported channel count %d (only mono supported)", header.NumChannels)
	}
	if header.SampleRate != SampleRate {
		return nil, header, fmt.Errorf("unsupported sample rate %d (only %d supported)", header.SampleRate, SampleRate)
	}
	if header.BitsPerSample != 8 {
		return nil, header, fmt.Errorf("unsupported bits per sample %d (only 8 supported)", header.BitsPerSample)
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, header, fmt.Errorf("read PCM data: %w", err)
	}
	samples := make([]byte, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = byte(v)
	}
	header.NumSamples = len(samples)
	return samples, header, nil
}

// ReadWAVFile is a convenience wrapper that opens a file path.
func ReadWAVFile(path string) ([]byte, WAVHeader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, WAVHeader{}, err
	}
	defer f.Close()
	return ReadWAV(f)
}
