package phoneme

import "fmt"

// ParseError reports an input byte that is neither a phoneme mnemonic nor a
// stress digit following a phoneme.
type ParseError struct {
	Byte   byte
	Offset int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unrecognized phonetic input %q at offset %d", e.Byte, e.Offset)
}

// stressInputTable maps digits to stress values by position; position 0 is
// never matched.
const stressInputTable = "*12345678"

// Parse tokenizes phonetic input into a Buffer. Two-letter mnemonics take
// precedence over one-letter ones; a digit sets the stress of the phoneme
// before it.
func Parse(input []byte) (*Buffer, error) {
	b := &Buffer{}
	for i := 0; i < len(input); {
		sign1 := input[i]
		if i+1 < len(input) {
			if id, ok := fullMatch(sign1, input[i+1]); ok {
				if err := b.Append(id, 0, 0); err != nil {
					return nil, err
				}
				i += 2
				continue
			}
		}
		if id, ok := wildMatch(sign1); ok {
			if err := b.Append(id, 0, 0); err != nil {
				return nil, err
			}
			i++
			continue
		}
		stress := stressValue(sign1)
		if stress == 0 || b.n == 0 {
			return nil, &ParseError{Byte: sign1, Offset: i}
		}
		b.Stress[b.n-1] = stress
		i++
	}
	return b, nil
}

func fullMatch(sign1, sign2 byte) (byte, bool) {
	if sign2 == '*' {
		return 0, false
	}
	for id := range SignInputTable1 {
		if SignInputTable1[id] == sign1 && SignInputTable2[id] == sign2 {
			return byte(id), true
		}
	}
	return 0, false
}

func wildMatch(sign1 byte) (byte, bool) {
	for id := range SignInputTable1 {
		if SignInputTable2[id] == '*' && SignInputTable1[id] == sign1 {
			return byte(id), true
		}
	}
	return 0, false
}

func stressValue(c byte) byte {
	for v := len(stressInputTable) - 1; v > 0; v-- {
		if stressInputTable[v] == c {
			return byte(v)
		}
	}
	return 0
}
