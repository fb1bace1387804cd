package phoneme

// Phoneme ids with a fixed meaning in the rule passes.
const (
	Pause    byte = 0  // zero-length pause filler (space)
	Period   byte = 1  // .
	Question byte = 2  // ?
	RX       byte = 18 // retroflex R after a vowel
	LX       byte = 19 // retroflex L after a vowel
	WX       byte = 20
	YX       byte = 21
	R        byte = 23
	L        byte = 24
	M        byte = 27
	N        byte = 28
	DX       byte = 30 // flap
	Q        byte = 31 // glottal stop
	S        byte = 32
	HH       byte = 36 // /H
	HX       byte = 37 // /X
	Z        byte = 38
	CH       byte = 42
	J        byte = 44
	UW       byte = 53
	D        byte = 57
	G        byte = 60
	GX       byte = 63
	T        byte = 69
	K        byte = 72
	KX       byte = 75
	AX       byte = 13
	UX       byte = 16
	UL       byte = 78
	UM       byte = 79
	UN       byte = 80

	// Break separates breath groups. It is inserted by the breath pass only.
	Break byte = 254
	// End is the terminator id returned for reads past the active length.
	End byte = 255
)

// MaxID is the largest valid inventory id.
const MaxID = 80

// Flag bits of the first attribute table.
const (
	FlagPlosive   = 0x01
	FlagStopCons  = 0x02
	FlagVoiced    = 0x04
	FlagAffectsH  = 0x08 // next-phoneme test in stop expansion
	FlagDiphthong = 0x10
	FlagDipYX     = 0x20 // diphthong ending in YX, front vowel for K/G
	FlagConsonant = 0x40
	FlagVowel     = 0x80
)

// Flag bits of the second attribute table.
const (
	Flag2Punct     = 0x01
	Flag2Alveolar  = 0x04
	Flag2Nasal     = 0x08
	Flag2Liquid    = 0x10
	Flag2Fricative = 0x20
	Flag2Glottal   = 0x40
)

// endFlags is what the rule passes see as the attribute of the terminator.
const endFlags = 65

// SignInputTable1 and SignInputTable2 spell each phoneme id; '*' in the second
// column means a one-character mnemonic.
var SignInputTable1 = [MaxID + 1]byte{
	' ', '.', '?', ',', '-', 'I', 'I', 'E', 'A', 'A', 'A', 'A', 'U', 'A', 'I', 'E',
	'U', 'O', 'R', 'L', 'W', 'Y', 'W', 'R', 'L', 'W', 'Y', 'M', 'N', 'N', 'D', 'Q',
	'S', 'S', 'F', 'T', '/', '/', 'Z', 'Z', 'V', 'D', 'C', '*', 'J', '*', '*', '*',
	'E', 'A', 'O', 'A', 'O', 'U', 'B', '*', '*', 'D', '*', '*', 'G', '*', '*', 'G',
	'*', '*', 'P', '*', '*', 'T', '*', '*', 'K', '*', '*', 'K', '*', '*', 'U', 'U',
	'U',
}

var SignInputTable2 = [MaxID + 1]byte{
	'*', '*', '*', '*', '*', 'Y', 'H', 'H', 'E', 'A', 'H', 'O', 'H', 'X', 'X', 'R',
	'X', 'H', 'X', 'X', 'X', 'X', 'H', '*', '*', '*', '*', '*', '*', 'X', 'X', '*',
	'*', 'H', '*', 'H', 'H', 'X', '*', 'H', '*', 'H', 'H', '*', '*', '*', '*', '*',
	'Y', 'Y', 'Y', 'W', 'W', 'W', '*', '*', '*', '*', '*', '*', '*', '*', '*', 'X',
	'*', '*', '*', '*', '*', '*', '*', '*', '*', '*', '*', 'X', '*', '*', 'L', 'M',
	'N',
}

var flags = [MaxID + 1]byte{
	0x00, 0x00, 0x00, 0x00, 0x00, 0xA4, 0xA4, 0xA4, 0xA4, 0xA4, 0xA4, 0x84, 0x84, 0xA4, 0xA4, 0x84,
	0x84, 0x84, 0x84, 0x84, 0x84, 0x84, 0x44, 0x44, 0x44, 0x44, 0x44, 0x4C, 0x4C, 0x4C, 0x48, 0x4C,
	0x40, 0x40, 0x40, 0x40, 0x40, 0x40, 0x44, 0x44, 0x44, 0x44, 0x48, 0x40, 0x4C, 0x44, 0x00, 0x00,
	0xB4, 0xB4, 0xB4, 0x94, 0x94, 0x94, 0x4E, 0x4E, 0x4E, 0x4E, 0x4E, 0x4E, 0x4E, 0x4E, 0x4E, 0x4E,
	0x4E, 0x4E, 0x4B, 0x4B, 0x4B, 0x4B, 0x4B, 0x4B, 0x4B, 0x4B, 0x4B, 0x4B, 0x4B, 0x4B, 0x80, 0xC1,
	0xC1,
}

// The last three entries (UL, UM, UN) are never consulted: the rewrite pass
// replaces those ids before any pass reads flags2.
var flags2 = [MaxID + 1]byte{
	0x80, 0xC1, 0xC1, 0xC1, 0xC1, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10, 0x10, 0x10, 0x10, 0x08, 0x0C, 0x08, 0x04, 0x40,
	0x24, 0x20, 0x20, 0x24, 0x00, 0x00, 0x24, 0x20, 0x20, 0x24, 0x20, 0x20, 0x00, 0x20, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x04, 0x04, 0x04, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x04, 0x04, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00,
}

// Unstressed durations in frames.
var lengthTable = [MaxID + 1]byte{
	0, 0x12, 0x12, 0x12, 8, 8, 8, 8, 8, 0xB, 6, 0xC, 0xA, 5, 5, 0xB,
	0xA, 0xA, 0xA, 9, 8, 7, 9, 7, 6, 8, 6, 7, 7, 7, 2, 5,
	2, 2, 2, 2, 2, 2, 6, 6, 7, 6, 6, 2, 8, 3, 1, 0x1E,
	0xD, 0xC, 0xC, 0xC, 0xE, 9, 6, 1, 2, 5, 1, 1, 6, 1, 2, 6,
	1, 2, 8, 2, 2, 4, 2, 2, 6, 1, 4, 6, 1, 4, 0xC7, 0xFF,
	0xFF,
}

var stressedLengthTable = [MaxID + 1]byte{
	0x00, 0x12, 0x12, 0x12, 8, 0xB, 9, 0xB, 0xE, 0xF, 0xB, 0x10, 0xC, 6, 6, 0xE,
	0xC, 0xE, 0xC, 0xB, 8, 8, 0xB, 0xA, 9, 8, 8, 8, 8, 8, 3, 5,
	2, 2, 2, 2, 2, 2, 6, 6, 8, 6, 6, 2, 9, 4, 2, 1,
	0xE, 0xF, 0xF, 0xF, 0xE, 0xE, 8, 2, 2, 7, 2, 1, 7, 2, 2, 7,
	2, 2, 8, 2, 2, 6, 2, 2, 7, 2, 4, 7, 1, 4, 5, 5,
	5,
}

// Flags returns the first attribute byte of id. The terminator and the break
// marker read as plosive consonants, which is what every rule expects from
// "end of input".
func Flags(id byte) byte {
	if id > MaxID {
		return endFlags
	}
	return flags[id]
}

// Flags2 returns the second attribute byte of id, zero outside the inventory.
func Flags2(id byte) byte {
	if id > MaxID {
		return 0
	}
	return flags2[id]
}

func isVowel(id byte) bool { return Flags(id)&FlagVowel != 0 }

// Name returns the two-character mnemonic of id ("??" outside the inventory).
func Name(id byte) string {
	if id > MaxID {
		return "??"
	}
	return string([]byte{SignInputTable1[id], SignInputTable2[id]})
}
