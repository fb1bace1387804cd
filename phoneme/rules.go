package phoneme

import "fmt"

// breathThreshold is the accumulated duration, in frames, after which a
// breath is forced at the last pause filler.
const breathThreshold = 232

// Apply runs the rule passes over b in order. After Apply every entry has a
// duration and the sequence may contain Break markers between breath groups.
func Apply(b *Buffer) error {
	if err := rewrite(b); err != nil {
		return fmt.Errorf("rewrite: %w", err)
	}
	copyStress(b)
	setLengths(b)
	lengthenBeforePunctuation(b)
	adjustLengths(b)
	if err := expandStops(b); err != nil {
		return fmt.Errorf("stop expansion: %w", err)
	}
	pruneInvalid(b)
	if err := insertBreath(b); err != nil {
		return fmt.Errorf("breath insertion: %w", err)
	}
	return nil
}

// Convert parses input and applies all rule passes.
func Convert(input []byte) (*Buffer, error) {
	b, err := Parse(input)
	if err != nil {
		return nil, err
	}
	if err := Apply(b); err != nil {
		return nil, err
	}
	return b, nil
}

// rewrite applies the allophone rules. Branch order matters: the chain below
// is evaluated top to bottom and the first match wins, then the tail rules
// (K/G variants, softening, continuation phonemes, flap) run on what is left.
func rewrite(b *Buffer) error {
	for pos := 0; pos < b.n; pos++ {
		p := b.Index[pos]
		if p == Pause {
			continue
		}
		pf := Flags(p)
		prior := b.At(pos - 1)

		switch {
		case pf&FlagDiphthong != 0:
			glide := WX
			if pf&FlagDipYX != 0 {
				glide = YX
			}
			if err := b.Insert(pos+1, glide, 0, b.Stress[pos]); err != nil {
				return err
			}
		case p == UL:
			if err := b.replaceWithSchwa(pos, L); err != nil {
				return err
			}
		case p == UM:
			if err := b.replaceWithSchwa(pos, M); err != nil {
				return err
			}
		case p == UN:
			if err := b.replaceWithSchwa(pos, N); err != nil {
				return err
			}
		case pf&FlagVowel != 0 && b.Stress[pos] != 0:
			// <STRESSED VOWEL> <PAUSE> <STRESSED VOWEL> gets a glottal stop.
			if b.At(pos+1) == Pause {
				next := b.At(pos + 2)
				if next != End && isVowel(next) && b.StressAt(pos+2) != 0 {
					if err := b.Insert(pos+2, Q, 0, 0); err != nil {
						return err
					}
				}
			}
		case p == R:
			switch {
			case prior == T:
				b.Index[pos-1] = CH
				if err := b.Insert(pos, CH+1, 0, b.Stress[pos-1]); err != nil {
					return err
				}
			case prior == D:
				b.Index[pos-1] = J
				if err := b.Insert(pos, J+1, 0, b.Stress[pos-1]); err != nil {
					return err
				}
			case isVowel(prior):
				b.Index[pos] = RX
			}
		case p == L && isVowel(prior):
			b.Index[pos] = LX
		case p == S && prior == G:
			b.Index[pos] = Z
		case p == G:
			if next := b.At(pos + 1); next != End && Flags(next)&FlagDipYX == 0 {
				b.Index[pos] = GX
			}
		}

		if p == K {
			if next := b.At(pos + 1); next == End || Flags(next)&FlagDipYX == 0 {
				b.Index[pos] = KX
				p = KX
				pf = Flags(p)
			}
		}

		if Flags(p)&FlagPlosive != 0 && prior == S {
			// S P -> S B, S T -> S D, S K -> S G, S KX -> S GX
			b.Index[pos] = p - 12
		} else if pf&FlagPlosive == 0 {
			switch b.Index[pos] {
			case UW:
				if Flags2(prior)&Flag2Alveolar != 0 {
					b.Index[pos] = UX
				}
			case CH, J:
				if err := b.Insert(pos+1, b.Index[pos]+1, 0, b.Stress[pos]); err != nil {
					return err
				}
			}
		}

		if (p == T || p == D) && isVowel(prior) {
			next := b.At(pos + 1)
			if next == Pause {
				next = b.At(pos + 2)
			}
			if isVowel(next) && b.StressAt(pos+1) == 0 {
				b.Index[pos] = DX
			}
		}
	}
	return nil
}

// replaceWithSchwa turns UL/UM/UN into AX followed by the consonant.
func (b *Buffer) replaceWithSchwa(pos int, consonant byte) error {
	b.Index[pos] = AX
	return b.Insert(pos+1, consonant, 0, b.Stress[pos])
}

// copyStress gives a consonant that precedes a stressed vowel the vowel's
// stress plus one.
func copyStress(b *Buffer) {
	for pos := 0; pos < b.n; pos++ {
		if Flags(b.Index[pos])&FlagConsonant == 0 {
			continue
		}
		next := b.At(pos + 1)
		if next == End || !isVowel(next) {
			continue
		}
		if s := b.Stress[pos+1]; s != 0 && s&0x80 == 0 {
			b.Stress[pos] = s + 1
		}
	}
}

func setLengths(b *Buffer) {
	for pos := 0; pos < b.n; pos++ {
		id := b.Index[pos]
		if id > MaxID {
			continue
		}
		if s := b.Stress[pos]; s == 0 || s&0x80 != 0 {
			b.Length[pos] = lengthTable[id]
		} else {
			b.Length[pos] = stressedLengthTable[id]
		}
	}
}

// lengthenBeforePunctuation backs up from each punctuation mark to the
// preceding vowel and lengthens every voiced or non-fricative phoneme up to
// the mark by half plus one.
func lengthenBeforePunctuation(b *Buffer) {
	for x := 0; x < b.n; {
		if Flags2(b.Index[x])&Flag2Punct == 0 {
			x++
			continue
		}
		mark := x
		if mark == 0 {
			x++
			continue
		}
		for x--; x > 0 && !isVowel(b.Index[x]); x-- {
		}
		if x <= 0 {
			return
		}
		for ; x != mark; x++ {
			id := b.Index[x]
			if Flags2(id)&Flag2Fricative == 0 || Flags(id)&FlagVoiced != 0 {
				a := b.Length[x]
				b.Length[x] = a>>1 + a + 1
			}
		}
		x++
	}
}

// adjustLengths applies the contextual shortening and lengthening rules.
func adjustLengths(b *Buffer) {
	for pos := 0; pos < b.n; pos++ {
		id := b.Index[pos]
		switch {
		case isVowel(id):
			next := b.At(pos + 1)
			if Flags(next)&FlagConsonant == 0 {
				// <VOWEL> <RX|LX> <CONSONANT>: shorten the vowel by one
				if next == RX || next == LX {
					if Flags(b.At(pos+2))&FlagConsonant != 0 {
						b.Length[pos]--
					}
				}
				continue
			}
			nf := Flags(next)
			if nf&FlagVoiced == 0 {
				// <VOWEL> <UNVOICED PLOSIVE>: shorten by an eighth
				if nf&FlagPlosive != 0 {
					b.Length[pos] -= b.Length[pos] >> 3
				}
				continue
			}
			// <VOWEL> <VOICED CONSONANT>: lengthen by a quarter plus one
			a := b.Length[pos]
			b.Length[pos] = a>>2 + a + 1
		case Flags2(id)&Flag2Nasal != 0:
			// <NASAL> <STOP CONSONANT>
			if next := b.At(pos + 1); next != End && Flags(next)&FlagStopCons != 0 {
				b.Length[pos+1] = 6
				b.Length[pos] = 5
			}
		case Flags(id)&FlagStopCons != 0:
			// <STOP CONSONANT> {pause} <STOP CONSONANT>: halve both, plus one
			x := pos + 1
			for b.At(x) == Pause {
				x++
			}
			if next := b.At(x); next != End && Flags(next)&FlagStopCons != 0 {
				b.Length[x] = b.Length[x]>>1 + 1
				b.Length[pos] = b.Length[pos]>>1 + 1
			}
		case Flags2(id)&Flag2Liquid != 0:
			// liquid before a diphthong glide loses two frames
			b.Length[pos] -= 2
		}
	}
}

// expandStops follows every stop consonant with its two release phonemes,
// unless it is an unvoiced plosive whose next sound is a stop-flagged
// consonant or /H /X.
func expandStops(b *Buffer) error {
	for pos := 0; pos < b.n; pos++ {
		id := b.Index[pos]
		if Flags(id)&FlagStopCons == 0 {
			continue
		}
		if Flags(id)&FlagPlosive != 0 {
			x := pos + 1
			for b.At(x) == Pause {
				x++
			}
			if next := b.At(x); next != End {
				if Flags(next)&FlagAffectsH != 0 || next == HH || next == HX {
					continue
				}
			}
		}
		s := b.Stress[pos]
		if err := b.Insert(pos+1, id+1, lengthTable[id+1], s); err != nil {
			return err
		}
		if err := b.Insert(pos+2, id+2, lengthTable[id+2], s); err != nil {
			return err
		}
		pos += 2
	}
	return nil
}

// pruneInvalid ends the sequence at the first id outside the inventory.
func pruneInvalid(b *Buffer) {
	for pos := 0; pos < b.n; pos++ {
		if b.Index[pos] > MaxID {
			b.Truncate(pos)
			return
		}
	}
}

// insertBreath places Break markers after punctuation and, when a stretch of
// speech grows past breathThreshold frames, turns the last pause filler into
// a glottal stop followed by a Break. A stretch without any pause filler is
// broken with a glottal stop placed right before the phoneme that crossed the
// threshold.
func insertBreath(b *Buffer) error {
	var length byte
	lastPause := -1
	groupStart := 0
	for pos := 0; pos < b.n; pos++ {
		id := b.Index[pos]
		length += b.Length[pos]
		if length < breathThreshold {
			switch {
			case id == Break:
				groupStart = pos + 1
			case Flags2(id)&Flag2Punct == 0:
				if id == Pause {
					lastPause = pos
				}
			default:
				length = 0
				pos++
				if err := b.Insert(pos, Break, 0, 0); err != nil {
					return err
				}
				groupStart = pos + 1
			}
			continue
		}
		length = 0
		if lastPause >= 0 {
			pos = lastPause
			lastPause = -1
			b.Index[pos] = Q
			b.Length[pos] = 4
			b.Stress[pos] = 0
			pos++
			if err := b.Insert(pos, Break, 0, 0); err != nil {
				return err
			}
			groupStart = pos + 1
			continue
		}
		if pos == groupStart {
			// a single phoneme reaches the threshold; nothing to split
			continue
		}
		if err := b.Insert(pos, Q, 4, 0); err != nil {
			return err
		}
		if err := b.Insert(pos+1, Break, 0, 0); err != nil {
			return err
		}
		// resume at the phoneme that crossed the threshold
		pos++
		groupStart = pos + 1
	}
	return nil
}
