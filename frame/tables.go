package frame

// F3 per phoneme. It is not scaled by the voice.
var freq3 = [NumPhonemes]byte{
	0x00, 0x5B, 0x5B, 0x5B, 0x5B, 0x6E, 0x5D, 0x5B, 0x58, 0x59, 0x57, 0x58, 0x52, 0x59,
	0x5D, 0x3E, 0x52, 0x58, 0x3E, 0x6E, 0x50, 0x5D, 0x5A, 0x3C, 0x6E, 0x5A, 0x6E, 0x51,
	0x79, 0x65, 0x79, 0x5B, 0x63, 0x6A, 0x51, 0x79, 0x5D, 0x52, 0x5D, 0x67, 0x4C, 0x5D,
	0x65, 0x65, 0x79, 0x65, 0x79, 0x00, 0x5A, 0x58, 0x58, 0x58, 0x58, 0x52, 0x51, 0x51,
	0x51, 0x79, 0x79, 0x79, 0x70, 0x6E, 0x6E, 0x5E, 0x5E, 0x5E, 0x51, 0x51, 0x51, 0x79,
	0x79, 0x79, 0x65, 0x65, 0x70, 0x5E, 0x5E, 0x5E, 0x08, 0x01,
}

// Raw amplitude codes per phoneme, rescaled after blending.
var ampl1 = [NumPhonemes]byte{
	0, 0, 0, 0, 0, 0xD, 0xD, 0xE,
	0xF, 0xF, 0xF, 0xF, 0xF, 0xC, 0xD, 0xC,
	0xF, 0xF, 0xD, 0xD, 0xD, 0xE, 0xD, 0xC,
	0xD, 0xD, 0xD, 0xC, 9, 9, 0, 0,
	0, 0, 0, 0, 0, 0, 0xB, 0xB,
	0xB, 0xB, 0, 0, 1, 0xB, 0, 2,
	0xE, 0xF, 0xF, 0xF, 0xF, 0xD, 2, 4,
	0, 2, 4, 0, 1, 4, 0, 1,
	4, 0, 0, 0, 0, 0, 0, 0,
	0, 0xC, 0, 0, 0, 0, 0xF, 0xF,
}

var ampl2 = [NumPhonemes]byte{
	0, 0, 0, 0, 0, 0xA, 0xB, 0xD,
	0xE, 0xD, 0xC, 0xC, 0xB, 9, 0xB, 0xB,
	0xC, 0xC, 0xC, 8, 8, 0xC, 8, 0xA,
	8, 8, 0xA, 3, 9, 6, 0, 0,
	0, 0, 0, 0, 0, 0, 3, 5,
	3, 4, 0, 0, 0, 5, 0xA, 2,
	0xE, 0xD, 0xC, 0xD, 0xC, 8, 0, 1,
	0, 0, 1, 0, 0, 1, 0, 0,
	1, 0, 0, 0, 0, 0, 0, 0,
	0, 0xA, 0, 0, 0xA, 0, 0, 0,
}

var ampl3 = [NumPhonemes]byte{
	0, 0, 0, 0, 0, 8, 7, 8,
	8, 1, 1, 0, 1, 0, 7, 5,
	1, 0, 6, 1, 0, 7, 0, 5,
	1, 0, 8, 0, 0, 3, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 1,
	0, 0, 0, 0, 0, 1, 0, 0,
	0xC, 0xE, 9, 1, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 7, 0, 0, 5, 0, 0x13, 0x10,
}

// sampledConsonantFlags selects noise playback. The low three bits pick the
// sample class plus one; the upper five bits, when set, mark an unvoiced
// sample and hold its inverted start offset.
var sampledConsonantFlags = [NumPhonemes]byte{
	32: 0xF1, 0xE2, 0xD3, 0xBB, 0x7C, 0x95, 1, 2,
	3, 3, 0, 0x72, 0, 2,
	67: 0x1B,
	70: 0x19,
}

// blendRank decides which side of a boundary owns the transition lengths.
var blendRank = [NumPhonemes]byte{
	0, 0x1F, 0x1F, 0x1F, 0x1F, 2, 2, 2,
	2, 2, 2, 2, 2, 2, 5, 5,
	2, 0xA, 2, 8, 5, 5, 0xB, 0xA,
	9, 8, 8, 0xA0, 8, 8, 0x17, 0x1F,
	0x12, 0x12, 0x12, 0x12, 0x1E, 0x1E, 0x14, 0x14,
	0x14, 0x14, 0x17, 0x17, 0x1A, 0x1A, 0x1D, 0x1D,
	2, 2, 2, 2, 2, 2, 0x1A, 0x1D,
	0x1B, 0x1A, 0x1D, 0x1B, 0x1A, 0x1D, 0x1B, 0x1A,
	0x1D, 0x1B, 0x17, 0x1D, 0x17, 0x17, 0x1D, 0x17,
	0x17, 0x1D, 0x17, 0x17, 0x1D, 0x17, 0x17, 0x17,
}

// Frames taken from the end (out) and the start (in) of a phoneme when it
// owns a transition.
var outBlendLength = [NumPhonemes]byte{
	0, 2, 2, 2, 2, 4, 4, 4,
	4, 4, 4, 4, 4, 4, 4, 4,
	4, 4, 3, 2, 4, 4, 2, 2,
	2, 2, 2, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 2, 2,
	2, 1, 0, 1, 0, 1, 0, 5,
	5, 5, 5, 5, 4, 4, 2, 0,
	1, 2, 0, 1, 2, 0, 1, 2,
	0, 1, 2, 0, 2, 2, 0, 1,
	3, 0, 2, 3, 0, 2, 0xA0, 0xA0,
}

var inBlendLength = [NumPhonemes]byte{
	0, 2, 2, 2, 2, 4, 4, 4,
	4, 4, 4, 4, 4, 4, 4, 4,
	4, 4, 3, 3, 4, 4, 3, 3,
	3, 3, 3, 1, 2, 3, 2, 1,
	3, 3, 3, 3, 1, 1, 3, 3,
	3, 2, 2, 3, 2, 3, 0, 0,
	5, 5, 5, 5, 4, 4, 2, 0,
	2, 2, 0, 3, 2, 0, 4, 2,
	0, 3, 2, 0, 2, 2, 0, 2,
	3, 0, 3, 3, 0, 3, 0xB0, 0xA0,
}

// stressPitch is added to the base pitch, indexed by stress+1. Values above
// 0x7F act as negative offsets under 8-bit wraparound.
var stressPitch = [11]byte{0, 0, 0xE0, 0xE6, 0xEC, 0xF3, 0xF9, 0, 6, 0xC, 6}

// amplitudeRescale maps raw amplitude codes 0..16 onto the 4-bit output
// level. Codes above 16 map to silence.
var amplitudeRescale = [256]byte{0, 1, 2, 2, 2, 3, 3, 4, 4, 5, 6, 8, 9, 0xB, 0xD, 0xF, 0}
