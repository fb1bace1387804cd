package audio

import (
	"bytes"
	"encoding/binary"
	"path/filepath"
	"testing"
)

// buildWAV constructs a minimal valid WAV file in memory.
func buildWAV(sampleRate uint32, bitsPerSample, numChannels uint16, samples []byte) []byte {
	var buf bytes.Buffer
	dataSize := uint32(len(samples))
	byteRate := sampleRate * uint32(numChannels) * uint32(bitsPerSample) / 8
	blockAlign := numChannels * bitsPerSample / 8

	// RIFF header
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")

	// fmt chunk
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16)) // chunk size
	binary.Write(&buf, binary.LittleEndian, uint16(1))  // PCM
	binary.Write(&buf, binary.LittleEndian, numChannels)
	binary.Write(&buf, binary.LittleEndian, sampleRate)
	binary.Write(&buf, binary.LittleEndian, byteRate)
	binary.Write(&buf, binary.LittleEndian, blockAlign)
	binary.Write(&buf, binary.LittleEndian, bitsPerSample)

	// data chunk
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, dataSize)
	buf.Write(samples)

	return buf.Bytes()
}

func TestReadWAV_Valid(t *testing.T) {
	raw := []byte{0x80, 0x90, 0xA0, 0x70, 0x60, 0x80}
	samples, header, err := ReadWAV(bytes.NewReader(buildWAV(SampleRate, 8, 1, raw)))
	if err != nil {
		t.Fatalf("ReadWAV error: %v", err)
	}
	if header.SampleRate != SampleRate {
		t.Errorf("SampleRate = %d, want %d", header.SampleRate, SampleRate)
	}
	if header.BitsPerSample != 8 {
		t.Errorf("BitsPerSample = %d, want 8", header.BitsPerSample)
	}
	if header.NumSamples != len(raw) {
		t.Errorf("NumSamples = %d, want %d", header.NumSamples, len(raw))
	}
	if !bytes.Equal(samples, raw) {
		t.Errorf("samples = %v, want %v", samples, raw)
	}
}

func TestReadWAV_NotRIFF(t *testing.T) {
	_, _, err := ReadWAV(bytes.NewReader([]byte("NOT_RIFF_DATA_HERE_EXTRA")))
	if err == nil {
		t.Fatal("expected error for non-RIFF data")
	}
}

func TestReadWAV_UnsupportedSampleRate(t *testing.T) {
	_, _, err := ReadWAV(bytes.NewReader(buildWAV(44100, 8, 1, []byte{0, 0})))
	if err == nil {
		t.Fatal("expected error for 44100 sample rate")
	}
}

func TestReadWAV_UnsupportedDepth(t *testing.T) {
	_, _, err := ReadWAV(bytes.NewReader(buildWAV(SampleRate, 16, 1, []byte{0, 0, 0, 0})))
	if err == nil {
		t.Fatal("expected error for 16-bit samples")
	}
}

func TestReadWAV_UnsupportedStereo(t *testing.T) {
	_, _, err := ReadWAV(bytes.NewReader(buildWAV(SampleRate, 8, 2, []byte{0, 0, 0, 0})))
	if err == nil {
		t.Fatal("expected error for stereo")
	}
}

func TestWriteWAVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	pcm := make([]byte, 1000)
	for i := range pcm {
		pcm[i] = byte(i)
	}
	if err := WriteWAVFile(path, pcm); err != nil {
		t.Fatalf("WriteWAVFile error: %v", err)
	}
	samples, header, err := ReadWAVFile(path)
	if err != nil {
		t.Fatalf("ReadWAVFile error: %v", err)
	}
	if header.SampleRate != SampleRate || header.NumChannels != 1 || header.BitsPerSample != 8 {
		t.Errorf("header = %+v", header)
	}
	if !bytes.Equal(samples, pcm) {
		t.Errorf("samples differ after round trip (len %d, want %d)", len(samples), len(pcm))
	}
}
