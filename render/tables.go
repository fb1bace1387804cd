package render

// Output levels and tick costs. timetable[prev][next] is the number of ticks
// that pass between an output of kind prev and the following one of kind
// next.
var timetable = [5][5]int{
	{162, 167, 167, 127, 128},
	{226, 60, 60, 0, 0},
	{225, 60, 59, 0, 0},
	{200, 0, 0, 54, 55},
	{199, 0, 0, 54, 54},
}

// Output kinds passed to OutputBuffer.Write.
const (
	kindOscillator = 0
	kindNoiseLow   = 1
	kindNoiseHigh  = 2
	kindVoicedHigh = 3
	kindVoicedLow  = 4
)

// noiseLevel is the low output level of each unvoiced sample class.
var noiseLevel = [5]byte{0x18, 0x1A, 0x17, 0x17, 0x17}

// sinus is one period of a 4-bit sine in the high nibble.
var sinus = [256]byte{
	0x00, 0x00, 0x00, 0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x30,
	0x30, 0x30, 0x30, 0x30, 0x30, 0x30, 0x40, 0x40, 0x40, 0x40, 0x40, 0x40, 0x40, 0x50, 0x50, 0x50,
	0x50, 0x50, 0x50, 0x50, 0x50, 0x60, 0x60, 0x60, 0x60, 0x60, 0x60, 0x60, 0x60, 0x60, 0x60, 0x60,
	0x60, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70,
	0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70,
	0x60, 0x60, 0x60, 0x60, 0x60, 0x60, 0x60, 0x60, 0x60, 0x60, 0x60, 0x60, 0x50, 0x50, 0x50, 0x50,
	0x50, 0x50, 0x50, 0x50, 0x40, 0x40, 0x40, 0x40, 0x40, 0x40, 0x40, 0x30, 0x30, 0x30, 0x30, 0x30,
	0x30, 0x30, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x00, 0x00,
	0x00, 0x00, 0x00, 0xF0, 0xF0, 0xF0, 0xF0, 0xF0, 0xF0, 0xE0, 0xE0, 0xE0, 0xE0, 0xE0, 0xE0, 0xD0,
	0xD0, 0xD0, 0xD0, 0xD0, 0xD0, 0xD0, 0xC0, 0xC0, 0xC0, 0xC0, 0xC0, 0xC0, 0xC0, 0xB0, 0xB0, 0xB0,
	0xB0, 0xB0, 0xB0, 0xB0, 0xB0, 0xA0, 0xA0, 0xA0, 0xA0, 0xA0, 0xA0, 0xA0, 0xA0, 0xA0, 0xA0, 0xA0,
	0xA0, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90,
	0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90,
	0xA0, 0xA0, 0xA0, 0xA0, 0xA0, 0xA0, 0xA0, 0xA0, 0xA0, 0xA0, 0xA0, 0xA0, 0xB0, 0xB0, 0xB0, 0xB0,
	0xB0, 0xB0, 0xB0, 0xB0, 0xC0, 0xC0, 0xC0, 0xC0, 0xC0, 0xC0, 0xC0, 0xD0, 0xD0, 0xD0, 0xD0, 0xD0,
	0xD0, 0xD0, 0xE0, 0xE0, 0xE0, 0xE0, 0xE0, 0xE0, 0xF0, 0xF0, 0xF0, 0xF0, 0xF0, 0xF0, 0x00, 0x00,
}

// rectangle is the square wave driving the third formant.
var rectangle = [256]byte{
	0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90,
	0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90,
	0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90,
	0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90,
	0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90,
	0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90,
	0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90,
	0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90,
	0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70,
	0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70,
	0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70,
	0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70,
	0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70,
	0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70,
	0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70,
	0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70, 0x70,
}

// multtable[n<<4|a] is the signed nibble n times the amplitude a, halved.
var multtable = [256]byte{
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x01, 0x01, 0x02, 0x02, 0x03, 0x03, 0x04, 0x04, 0x05, 0x05, 0x06, 0x06, 0x07, 0x07,
	0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F,
	0x00, 0x01, 0x03, 0x04, 0x06, 0x07, 0x09, 0x0A, 0x0C, 0x0D, 0x0F, 0x10, 0x12, 0x13, 0x15, 0x16,
	0x00, 0x02, 0x04, 0x06, 0x08, 0x0A, 0x0C, 0x0E, 0x10, 0x12, 0x14, 0x16, 0x18, 0x1A, 0x1C, 0x1E,
	0x00, 0x02, 0x05, 0x07, 0x0A, 0x0C, 0x0F, 0x11, 0x14, 0x16, 0x19, 0x1B, 0x1E, 0x20, 0x23, 0x25,
	0x00, 0x03, 0x06, 0x09, 0x0C, 0x0F, 0x12, 0x15, 0x18, 0x1B, 0x1E, 0x21, 0x24, 0x27, 0x2A, 0x2D,
	0x00, 0x03, 0x07, 0x0A, 0x0E, 0x11, 0x15, 0x18, 0x1C, 0x1F, 0x23, 0x26, 0x2A, 0x2D, 0x31, 0x34,
	0x00, 0xFC, 0xF8, 0xF4, 0xF0, 0xEC, 0xE8, 0xE4, 0xE0, 0xDC, 0xD8, 0xD4, 0xD0, 0xCC, 0xC8, 0xC4,
	0x00, 0xFC, 0xF9, 0xF5, 0xF2, 0xEE, 0xEB, 0xE7, 0xE4, 0xE0, 0xDD, 0xD9, 0xD6, 0xD2, 0xCF, 0xCB,
	0x00, 0xFD, 0xFA, 0xF7, 0xF4, 0xF1, 0xEE, 0xEB, 0xE8, 0xE5, 0xE2, 0xDF, 0xDC, 0xD9, 0xD6, 0xD3,
	0x00, 0xFD, 0xFB, 0xF8, 0xF6, 0xF3, 0xF1, 0xEE, 0xEC, 0xE9, 0xE7, 0xE4, 0xE2, 0xDF, 0xDD, 0xDA,
	0x00, 0xFE, 0xFC, 0xFA, 0xF8, 0xF6, 0xF4, 0xF2, 0xF0, 0xEE, 0xEC, 0xEA, 0xE8, 0xE6, 0xE4, 0xE2,
	0x00, 0xFE, 0xFD, 0xFB, 0xFA, 0xF8, 0xF7, 0xF5, 0xF4, 0xF2, 0xF1, 0xEF, 0xEE, 0xEC, 0xEB, 0xE9,
	0x00, 0xFF, 0xFE, 0xFD, 0xFC, 0xFB, 0xFA, 0xF9, 0xF8, 0xF7, 0xF6, 0xF5, 0xF4, 0xF3, 0xF2, 0xF1,
	0x00, 0xFF, 0xFF, 0xFE, 0xFE, 0xFD, 0xFD, 0xFC, 0xFC, 0xFB, 0xFB, 0xFA, 0xFA, 0xF9, 0xF9, 0xF8,
}

// sampleTable holds five classes of 256 bit patterns played back for
// sampled consonants.
var sampleTable = [5 * 256]byte{
	0x87, 0x23, 0x46, 0xDC, 0xB0, 0xDD, 0xEE, 0xF8, 0xFD, 0xC3, 0x5C, 0xBF, 0x5C, 0x53, 0x45, 0xEC,
	0xC0, 0xA1, 0xD3, 0x12, 0x65, 0x84, 0x6F, 0x3B, 0x4D, 0x65, 0xBF, 0x69, 0x54, 0xAC, 0x36, 0xFB,
	0x85, 0xB9, 0x09, 0xB4, 0x54, 0x4D, 0x2E, 0xB5, 0x37, 0x6E, 0xBC, 0x76, 0x20, 0xDB, 0xBE, 0x1F,
	0x75, 0x77, 0xA5, 0xE0, 0xA1, 0x73, 0x01, 0x47, 0x26, 0x86, 0x58, 0x66, 0xF6, 0x14, 0x5C, 0x6C,
	0x43, 0x37, 0x30, 0xB4, 0x61, 0x4A, 0xC7, 0x6F, 0x0C, 0x4A, 0xD6, 0x6D, 0xF1, 0x0B, 0x9C, 0x0A,
	0x8D, 0x25, 0x74, 0x35, 0x83, 0xFF, 0xEC, 0x02, 0xBC, 0x4A, 0x26, 0x77, 0x42, 0xF8, 0x01, 0xD8,
	0x33, 0x7F, 0x0A, 0x9A, 0x27, 0x67, 0x6D, 0x2C, 0x15, 0x7E, 0x44, 0xBD, 0xE4, 0x19, 0xD7, 0x8A,
	0xC4, 0xAF, 0x66, 0x85, 0x18, 0x1A, 0xBB, 0xF2, 0xF5, 0xF0, 0x33, 0xB7, 0x16, 0x31, 0x39, 0x5B,
	0x3D, 0x89, 0x96, 0xD1, 0xA1, 0x2E, 0x09, 0x27, 0x40, 0x68, 0x4F, 0x82, 0xFD, 0xC1, 0x5C, 0xE5,
	0x54, 0xF0, 0x3E, 0xB6, 0xE7, 0x06, 0xA3, 0xFD, 0x4C, 0x4B, 0x96, 0x4B, 0xB4, 0x4E, 0x4E, 0xCC,
	0xDA, 0x02, 0x22, 0x5F, 0xF2, 0x21, 0xEF, 0x94, 0xDF, 0xFA, 0xA0, 0x91, 0x34, 0x7A, 0xC9, 0x1E,
	0x86, 0x40, 0x65, 0x4E, 0x73, 0xCA, 0x5B, 0xFA, 0x94, 0x96, 0xF0, 0xA4, 0xA3, 0x87, 0x41, 0x48,
	0x67, 0x26, 0x26, 0x4B, 0x44, 0x54, 0xFD, 0x3F, 0x47, 0xD0, 0x9C, 0x05, 0x8C, 0x8E, 0x4B, 0x0C,
	0x5E, 0xD4, 0x09, 0xA5, 0x56, 0xB0, 0x6F, 0xFF, 0x50, 0x12, 0x92, 0x9E, 0x1F, 0xD5, 0x64, 0x87,
	0x42, 0x48, 0x10, 0x2A, 0xD4, 0x8D, 0xB3, 0x60, 0x89, 0xF7, 0xDF, 0x6D, 0xB4, 0x00, 0x44, 0x0B,
	0xF5, 0x05, 0x29, 0x9D, 0xF0, 0xBB, 0xA0, 0xFC, 0x3B, 0x6A, 0x60, 0xDC, 0xFE, 0xD7, 0x29, 0xD7,

	0x48, 0x39, 0x2E, 0x31, 0x21, 0x58, 0x85, 0xEE, 0x00, 0xE6, 0x18, 0x8D, 0xAF, 0x63, 0x85, 0x81,
	0x0F, 0xAC, 0xB9, 0xEC, 0xAC, 0xAE, 0xEE, 0xBF, 0xF6, 0x41, 0x55, 0x64, 0x07, 0x54, 0xCA, 0x38,
	0xF4, 0x02, 0x04, 0x5A, 0xBC, 0xB2, 0x3D, 0xAC, 0x93, 0xE8, 0x3E, 0x0E, 0xF7, 0x9C, 0x66, 0x82,
	0x18, 0xD9, 0xA6, 0x46, 0xC5, 0xB3, 0x48, 0x8D, 0x3F, 0x77, 0xD7, 0xEC, 0xCA, 0xA0, 0xE1, 0x38,
	0x4B, 0x12, 0x5D, 0x82, 0x77, 0xD6, 0xEC, 0xE7, 0xA4, 0xB0, 0x85, 0xE6, 0x01, 0x8E, 0x3A, 0x00,
	0x42, 0x0B, 0x1B, 0x1C, 0xCC, 0x10, 0x1E, 0xD3, 0x49, 0x6D, 0x0A, 0x10, 0x30, 0xD7, 0x6F, 0xDC,
	0x55, 0xC5, 0x14, 0x5B, 0x6C, 0x80, 0x2A, 0x84, 0x84, 0x22, 0x31, 0xFD, 0x46, 0x4A, 0xA4, 0x61,
	0x9A, 0xD8, 0x7C, 0x75, 0xE0, 0xB1, 0x71, 0xD1, 0x02, 0x3D, 0x5C, 0x89, 0x5B, 0xCD, 0x93, 0x25,
	0x22, 0x3C, 0xFC, 0xB7, 0x7D, 0x3E, 0xC7, 0xEB, 0x1A, 0x7C, 0xEF, 0xF5, 0xD1, 0x36, 0x3A, 0x98,
	0x57, 0x31, 0x54, 0x54, 0x2D, 0x20, 0x54, 0xA9, 0x36, 0x62, 0x90, 0xAE, 0x42, 0xAD, 0x08, 0xD0,
	0x77, 0x1C, 0xF0, 0x16, 0xB2, 0x2F, 0xAE, 0x19, 0xA5, 0x86, 0xAF, 0x7C, 0x86, 0xFA, 0x75, 0x8E,
	0xBE, 0x16, 0x74, 0x32, 0x83, 0x3C, 0xF1, 0xB6, 0x8C, 0x09, 0x5D, 0x4D, 0x6B, 0xBE, 0xEF, 0x6F,
	0xC4, 0x56, 0x7D, 0x73, 0xCD, 0x5B, 0x39, 0x89, 0x22, 0xC0, 0xE7, 0xD8, 0xBD, 0x68, 0x0E, 0x89,
	0x91, 0xD1, 0x62, 0x33, 0xBD, 0x17, 0x03, 0x13, 0x75, 0xAB, 0xBB, 0x2F, 0xEB, 0x12, 0x7D, 0x87,
	0xD7, 0x5C, 0xDB, 0x52, 0x06, 0xCA, 0xF2, 0xE8, 0xF3, 0x12, 0xC5, 0x97, 0x4D, 0x99, 0xA4, 0x06,
	0x94, 0xFA, 0xFF, 0x99, 0x0E, 0x14, 0x84, 0x72, 0x38, 0x6C, 0x17, 0x3E, 0x15, 0xF4, 0x53, 0x0D,

	0xC2, 0xCA, 0x86, 0xE4, 0x76, 0xD8, 0xC0, 0x65, 0xCE, 0x65, 0x48, 0x73, 0x24, 0x42, 0x1F, 0x19,
	0x78, 0x98, 0x4D, 0x32, 0xB6, 0x3B, 0x18, 0x6C, 0xB7, 0x2D, 0x37, 0x56, 0xBA, 0x6E, 0xCD, 0x7A,
	0x3C, 0x04, 0xAC, 0xA6, 0xEF, 0xD7, 0xD4, 0xCC, 0xB8, 0x0C, 0x99, 0xC9, 0x09, 0x84, 0x53, 0x3D,
	0xE1, 0x99, 0x58, 0x1D, 0xFB, 0x3A, 0xA9, 0x50, 0x6C, 0x9F, 0x29, 0xFF, 0xFE, 0x00, 0x36, 0x07,
	0x9E, 0xD6, 0xC9, 0xE2, 0x9D, 0x2F, 0xA5, 0x18, 0xBA, 0xA8, 0xD0, 0x57, 0x19, 0x50, 0x9C, 0x85,
	0x9A, 0x0C, 0x63, 0xD2, 0x88, 0x5D, 0xE0, 0x79, 0x6D, 0x7A, 0x1C, 0x01, 0x0C, 0x2C, 0xD8, 0x62,
	0x76, 0xB6, 0xCF, 0x02, 0x6B, 0x55, 0xF6, 0x13, 0x5C, 0xAF, 0x5E, 0x83, 0x00, 0xF7, 0x1A, 0x70,
	0xEE, 0x29, 0xE2, 0xFD, 0x21, 0x44, 0x86, 0xE2, 0x76, 0x36, 0xD9, 0x80, 0x43, 0x8B, 0x20, 0x9A,
	0xB5, 0x73, 0x65, 0x49, 0x73, 0x09, 0x46, 0x4E, 0xA4, 0xD5, 0x8B, 0x9E, 0x8A, 0xC1, 0xAF, 0xFF,
	0x90, 0x0F, 0x51, 0xA2, 0xAE, 0x68, 0xA9, 0x9A, 0x70, 0x6E, 0x3F, 0x60, 0xD5, 0xFF, 0x92, 0x0F,
	0x0B, 0xAA, 0x0D, 0x13, 0xF3, 0xBD, 0xD7, 0x1E, 0xD0, 0x49, 0x1A, 0x06, 0xE2, 0xF6, 0x20, 0x5B,
	0xA8, 0x9D, 0x5D, 0xA9, 0x73, 0x69, 0x48, 0xAF, 0x3A, 0x8D, 0x55, 0x78, 0x04, 0x58, 0xBC, 0xE8,
	0x35, 0x0F, 0xE8, 0xB2, 0x19, 0xA9, 0x87, 0x73, 0x4F, 0x4D, 0xE1, 0xA9, 0x5F, 0x6D, 0x34, 0x16,
	0xC6, 0x23, 0x2B, 0xD3, 0xA0, 0x74, 0x2C, 0x80, 0x6A, 0x8F, 0xC5, 0x36, 0x5E, 0x96, 0x02, 0xBE,
	0x4A, 0x7C, 0x7F, 0xE1, 0x83, 0x5B, 0xFF, 0x94, 0x0F, 0xE5, 0xB3, 0xE8, 0x9E, 0x1D, 0xD5, 0x3E,
	0x8F, 0xE1, 0x33, 0x4A, 0x0D, 0x73, 0xFD, 0x5C, 0x49, 0x46, 0x0E, 0xAF, 0x94, 0x9F, 0xF1, 0xE1,

	0x2E, 0x54, 0x2F, 0x20, 0x0E, 0xA1, 0x95, 0x19, 0xCA, 0x89, 0xE5, 0xDD, 0xE7, 0xF9, 0xB8, 0xE5,
	0x80, 0xEF, 0x99, 0xDE, 0x0B, 0x97, 0x0B, 0x92, 0x0B, 0x0B, 0x1E, 0x1C, 0x55, 0x05, 0x09, 0x98,
	0x50, 0x31, 0x97, 0x49, 0x99, 0x10, 0x17, 0xD2, 0x0C, 0x4B, 0xD6, 0x40, 0xF5, 0x5A, 0x21, 0xA7,
	0x9E, 0xF6, 0xCC, 0x42, 0x17, 0x18, 0x10, 0xBA, 0xC0, 0xDF, 0xDE, 0xA5, 0x85, 0xAF, 0x0B, 0x8A,
	0x08, 0xB3, 0x79, 0x8A, 0x62, 0xBC, 0xAA, 0x3E, 0x14, 0xF4, 0x7E, 0x09, 0xB7, 0x54, 0x3A, 0x22,
	0x47, 0xF1, 0x99, 0x88, 0x02, 0xE8, 0x43, 0x03, 0x37, 0x70, 0xBF, 0x20, 0x5E, 0xA8, 0x04, 0x48,
	0xBE, 0x38, 0x70, 0x14, 0x32, 0x63, 0x24, 0x92, 0x00, 0x0A, 0x01, 0x32, 0x2A, 0x2E, 0x96, 0x32,
	0xB9, 0x3A, 0xB3, 0x53, 0x8E, 0xF0, 0x1C, 0xB3, 0x1D, 0x84, 0x37, 0x33, 0xB4, 0x16, 0x46, 0x35,
	0xA9, 0xFB, 0x7E, 0xA2, 0xA5, 0x69, 0xB6, 0xB4, 0x0F, 0x45, 0xA0, 0xCA, 0x3C, 0xF4, 0xB6, 0x15,
	0x1C, 0x4A, 0x06, 0x72, 0xE2, 0x72, 0x36, 0x6D, 0x91, 0x05, 0x7D, 0x94, 0xD5, 0xFB, 0x92, 0xBB,
	0x1A, 0xEC, 0xFB, 0xA7, 0xBC, 0xF3, 0x36, 0xC0, 0x83, 0xD6, 0xE8, 0xE7, 0x10, 0xA1, 0xC3, 0x10,
	0xB5, 0xC1, 0x74, 0xE1, 0x9C, 0x58, 0x84, 0xEE, 0x2D, 0xE2, 0x49, 0x30, 0x02, 0x70, 0x56, 0x39,
	0x78, 0x38, 0x5E, 0x10, 0x14, 0xD2, 0x7B, 0x47, 0x24, 0x86, 0x02, 0x6E, 0x55, 0x6F, 0x06, 0x4B,
	0xE4, 0x47, 0xDF, 0x9D, 0xAE, 0xB3, 0xB7, 0x96, 0x27, 0xBB, 0x73, 0xE3, 0x5F, 0x1F, 0x38, 0x7D,
	0x15, 0xC3, 0x54, 0xBE, 0x34, 0x71, 0xC8, 0x01, 0xA8, 0x3F, 0x4E, 0xD1, 0xD9, 0x23, 0x50, 0xDE,
	0x8E, 0x81, 0x10, 0xAF, 0xC2, 0x96, 0x8E, 0xA9, 0x14, 0x67, 0x6A, 0x2C, 0xD6, 0x63, 0xF0, 0x8D,

	0xA5, 0x87, 0xAF, 0x51, 0x82, 0xAB, 0xC8, 0x23, 0xAD, 0xC5, 0xCC, 0x45, 0x17, 0xDB, 0x0D, 0x0E,
	0xF0, 0x9C, 0xA5, 0x9F, 0xAC, 0xE9, 0xE5, 0x3D, 0xFF, 0x9A, 0x0E, 0x63, 0x88, 0x80, 0xFE, 0x9B,
	0x23, 0x4A, 0xDD, 0x6C, 0xEE, 0x25, 0xE3, 0x21, 0x12, 0x8F, 0x9D, 0x3E, 0xA7, 0xE5, 0xFB, 0xE2,
	0xB7, 0x2B, 0x37, 0xB8, 0xA3, 0x8B, 0x40, 0x94, 0x54, 0xED, 0x3D, 0x97, 0x95, 0x87, 0xDF, 0x5D,
	0xB3, 0x70, 0x8B, 0x27, 0x9A, 0x76, 0x6E, 0xD1, 0x79, 0x30, 0x72, 0x7C, 0x67, 0xE2, 0x3B, 0x3C,
	0x69, 0xA3, 0xB6, 0x46, 0x15, 0xAC, 0x5B, 0xF4, 0x95, 0x10, 0xCB, 0xCC, 0xC3, 0x01, 0xB7, 0x3C,
	0x35, 0xAB, 0xFB, 0x24, 0xAA, 0x06, 0x12, 0xEC, 0x93, 0xA8, 0x35, 0x4F, 0xE3, 0xF3, 0x0D, 0xC6,
	0xEC, 0x37, 0xBB, 0xA3, 0xFC, 0x4C, 0x66, 0x92, 0x1A, 0x09, 0xE3, 0x5D, 0x1F, 0x62, 0x75, 0xB6,
	0xB8, 0x0E, 0x99, 0x93, 0x01, 0x27, 0x28, 0x67, 0xC6, 0x3E, 0x28, 0xF2, 0xD2, 0xF5, 0x50, 0x20,
	0x95, 0xB4, 0xD8, 0x5A, 0x70, 0xAE, 0x22, 0xA3, 0xE9, 0x4E, 0x2F, 0xC2, 0x16, 0x98, 0x2B, 0x3C,
	0xB9, 0xBC, 0xA5, 0x3F, 0xBF, 0xCB, 0x47, 0xD4, 0x9C, 0xB1, 0x9D, 0xC8, 0xBD, 0xB8, 0x11, 0x9A,
	0xE8, 0x7B, 0x05, 0x2F, 0x9D, 0x1E, 0xA2, 0x45, 0x71, 0xD5, 0x02, 0x89, 0x4D, 0xCF, 0xAD, 0x79,
	0xDC, 0x6B, 0xC3, 0xE2, 0xAF, 0x28, 0x8F, 0xDF, 0x35, 0xBC, 0xF9, 0x37, 0xF2, 0xA9, 0xF8, 0x7E,
	0xD5, 0xA9, 0x9B, 0x70, 0x43, 0x3B, 0x31, 0x68, 0x52, 0x81, 0xDC, 0xB3, 0xDD, 0x99, 0xF4, 0x0F,
	0x05, 0xAB, 0x8B, 0x28, 0x9B, 0xDD, 0x51, 0xE8, 0xA4, 0x1B, 0x97, 0xDB, 0x8D, 0x18, 0x72, 0xB4,
	0x7B, 0x49, 0x25, 0x00, 0x39, 0x06, 0x35, 0xE9, 0xF0, 0x3F, 0xB6, 0xCA, 0x02, 0xF2, 0x40, 0xE1,
}
