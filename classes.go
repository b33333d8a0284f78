package jamo

// JamoClass is the positional role a jamo occupies within a syllable block.
type JamoClass int

const (
	Lead  JamoClass = iota // choseong, initial consonant position
	Vowel                  // jungseong, medial vowel position
	Tail                   // jongseong, final consonant position
)

func (c JamoClass) String() string {
	switch c {
	case Lead:
		return "lead"
	case Vowel:
		return "vowel"
	case Tail:
		return "tail"
	}
	return "invalid"
}

const (
	hangulBase = 0xAC00
	hangulEnd  = 0xD7A3

	leadOffset  = 0x10FF
	vowelOffset = 0x1160
	tailOffset  = 0x11A7

	vowelCount = 21
	tailCount  = 28

	leadFiller  = 0x115F
	vowelFiller = 0x1160
	hcjFiller   = 0x3164
)

// IsJamo reports whether r is a Hangul jamo: a character in the U+11xx jamo
// block, one of its two extension blocks, or a compatibility jamo letter.
func IsJamo(r rune) bool {
	return r >= 0x1100 && r <= 0x11FF ||
		r >= 0xA960 && r <= 0xA97C ||
		r >= 0xD7B0 && r <= 0xD7C6 ||
		r >= 0xD7CB && r <= 0xD7FB ||
		IsHCJ(r)
}

// IsJamoModern reports whether r is a jamo of contemporary Korean: one of
// the 19 modern leads, 21 modern vowels or 27 modern tails, or a modern HCJ
// letter.
func IsJamoModern(r rune) bool {
	return r >= 0x1100 && r <= 0x1112 ||
		r >= 0x1161 && r <= 0x1175 ||
		r >= 0x11A8 && r <= 0x11C2 ||
		IsHCJModern(r)
}

// IsHCJ reports whether r is a Hangul Compatibility Jamo letter. The
// reserved Hangul filler U+3164 is excluded.
func IsHCJ(r rune) bool {
	return r >= 0x3131 && r <= 0x318E && r != hcjFiller
}

// IsHCJModern reports whether r is a modern Hangul Compatibility Jamo
// letter.
func IsHCJModern(r rune) bool {
	return r >= 0x3131 && r <= 0x3163
}

// IsHangulChar reports whether r is a precomposed Hangul syllable.
func IsHangulChar(r rune) bool {
	return r >= hangulBase && r <= hangulEnd
}

// Leads returns all lead jamo, archaic forms included. The classless lead
// filler U+115F is excluded from iteration.
func Leads() []rune {
	return collectRanges([][2]rune{{0x1100, 0x115E}, {0xA960, 0xA97C}})
}

// Vowels returns all vowel jamo, archaic forms included. The classless vowel
// filler U+1160 is excluded from iteration.
func Vowels() []rune {
	return collectRanges([][2]rune{{0x1161, 0x11A7}, {0xD7B0, 0xD7C6}})
}

// Tails returns all tail jamo, archaic forms included.
func Tails() []rune {
	return collectRanges([][2]rune{{0x11A8, 0x11FF}, {0xD7CB, 0xD7FB}})
}

// LeadsModern returns the 19 lead consonants of contemporary Korean.
func LeadsModern() []rune {
	return collectRanges([][2]rune{{0x1100, 0x1112}})
}

// VowelsModern returns the 21 vowels of contemporary Korean.
func VowelsModern() []rune {
	return collectRanges([][2]rune{{0x1161, 0x1175}})
}

// TailsModern returns the 27 tail consonants of contemporary Korean.
func TailsModern() []rune {
	return collectRanges([][2]rune{{0x11A8, 0x11C2}})
}

func collectRanges(ranges [][2]rune) []rune {
	n := 0
	for _, rng := range ranges {
		n += int(rng[1]-rng[0]) + 1
	}
	out := make([]rune, 0, n)
	for _, rng := range ranges {
		for r := rng[0]; r <= rng[1]; r++ {
			out = append(out, r)
		}
	}
	return out
}

// GetJamoClass determines whether a U+11xx jamo is a lead, vowel, or tail.
// The two classless fillers count as Lead and Vowel for position purposes,
// and the archaic extension blocks carry their positional class as well.
// Plain HCJ has no positional class of its own and fails, as does any
// non-jamo code point.
func GetJamoClass(r rune) (JamoClass, error) {
	switch {
	case r >= 0x1100 && r <= 0x115F, r >= 0xA960 && r <= 0xA97C:
		return Lead, nil
	case r >= 0x1160 && r <= 0x11A7, r >= 0xD7B0 && r <= 0xD7C6:
		return Vowel, nil
	case r >= 0x11A8 && r <= 0x11FF, r >= 0xD7CB && r <= 0xD7FB:
		return Tail, nil
	}
	return 0, invalidJamo(r, "could not determine jamo class")
}
