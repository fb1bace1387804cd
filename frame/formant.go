package frame

// NumPhonemes is the number of rows in every per-phoneme frame table.
const NumPhonemes = 81

// FormantTable holds the first and second formant frequencies per phoneme.
// It depends only on the voice and is safe to share between goroutines.
type FormantTable struct {
	Mouth  [NumPhonemes]byte // F1
	Throat [NumPhonemes]byte // F2
}

var baseMouth = [NumPhonemes]byte{
	0x00, 0x13, 0x13, 0x13, 0x13, 0xA, 0xE, 0x12, 0x18, 0x1A, 0x16, 0x14, 0x10, 0x14, 0xE,
	0x12, 0xE, 0x12, 0x12, 0x10, 0xC, 0xE, 0xA, 0x12, 0xE, 0xA, 8, 6, 6, 6, 6, 0x11, 6, 6,
	6, 6, 0xE, 0x10, 9, 0xA, 8, 0xA, 6, 6, 6, 5, 6, 0, 0x12, 0x1A, 0x14, 0x1A, 0x12, 0xC,
	6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 0xA, 0xA, 6, 6, 6, 0x2C, 0x13,
	0x13,
}

var baseThroat = [NumPhonemes]byte{
	0x00, 0x43, 0x43, 0x43, 0x43, 0x54, 0x48, 0x42, 0x3E, 0x28, 0x2C, 0x1E, 0x24, 0x2C,
	0x48, 0x30, 0x24, 0x1E, 0x32, 0x24, 0x1C, 0x44, 0x18, 0x32, 0x1E, 0x18, 0x52, 0x2E,
	0x36, 0x56, 0x36, 0x43, 0x49, 0x4F, 0x1A, 0x42, 0x49, 0x25, 0x33, 0x42, 0x28, 0x2F,
	0x4F, 0x4F, 0x42, 0x4F, 0x6E, 0x00, 0x48, 0x26, 0x1E, 0x2A, 0x1E, 0x22, 0x1A, 0x1A,
	0x1A, 0x42, 0x42, 0x42, 0x6E, 0x6E, 0x6E, 0x54, 0x54, 0x54, 0x1A, 0x1A, 0x1A, 0x42,
	0x42, 0x42, 0x6D, 0x56, 0x6D, 0x54, 0x54, 0x54, 0x7F, 0x7F, 0x7F,
}

// Formant weights for the scaled ranges 5..29 and 48..53. Zero means the
// base entry is kept.
var (
	mouthWeights5to29 = [30]byte{
		0, 0, 0, 0, 0, 10,
		14, 19, 24, 27, 23, 21, 16, 20, 14, 18, 14, 18, 18,
		16, 13, 15, 11, 18, 14, 11, 9, 6, 6, 6,
	}
	throatWeights5to29 = [30]byte{
		0, 0, 0, 0, 0, 84,
		73, 67, 63, 40, 44, 31, 37, 45, 73, 49, 36, 30, 51,
		37, 29, 69, 24, 50, 30, 24, 83, 46, 54, 86,
	}
	mouthWeights48to53  = [6]byte{19, 27, 21, 27, 18, 13}
	throatWeights48to53 = [6]byte{72, 39, 31, 43, 30, 34}
)

// scale multiplies a weight by an 8-bit voice parameter keeping the high
// byte, then doubles it: ((p*w)>>8)<<1. At p=128 this returns w rounded down
// to even.
func scale(param, weight byte) byte {
	return byte((uint(param)*uint(weight))>>8) << 1
}

// NewFormantTable derives the formant table for the given mouth and throat
// parameters.
func NewFormantTable(mouth, throat byte) *FormantTable {
	t := &FormantTable{Mouth: baseMouth, Throat: baseThroat}
	for i := 5; i < 30; i++ {
		if w := mouthWeights5to29[i]; w != 0 {
			t.Mouth[i] = scale(mouth, w)
		}
		if w := throatWeights5to29[i]; w != 0 {
			t.Throat[i] = scale(throat, w)
		}
	}
	for i := 0; i < 6; i++ {
		t.Mouth[48+i] = scale(mouth, mouthWeights48to53[i])
		t.Throat[48+i] = scale(throat, throatWeights48to53[i])
	}
	return t
}
