package jamo

import (
	"errors"
	"testing"
)

const (
	modernLeads  = "ᄀᄁᄂᄃᄄᄅᄆᄇᄈᄉᄊᄋᄌᄍᄎᄏᄐᄑᄒ"
	modernVowels = "ᅡᅢᅣᅤᅥᅦᅧᅨᅩᅪᅫᅬᅭᅮᅯᅰᅱᅲᅳᅴᅵ"
	modernTails  = "ᆨᆩᆪᆫᆬᆭᆮᆯᆰᆱᆲᆳᆴᆵᆶᆷᆸᆹᆺᆻᆼᆽᆾᆿᇀᇁᇂ"
)

func TestGetJamoClassModern(t *testing.T) {
	for _, lead := range modernLeads {
		if class, err := GetJamoClass(lead); err != nil || class != Lead {
			t.Fatalf("U+%04X should classify as lead, got %v (%v)", lead, class, err)
		}
	}
	for _, vowel := range modernVowels {
		if class, err := GetJamoClass(vowel); err != nil || class != Vowel {
			t.Fatalf("U+%04X should classify as vowel, got %v (%v)", vowel, class, err)
		}
	}
	for _, tail := range modernTails {
		if class, err := GetJamoClass(tail); err != nil || class != Tail {
			t.Fatalf("U+%04X should classify as tail, got %v (%v)", tail, class, err)
		}
	}
}

func TestGetJamoClassFillers(t *testing.T) {
	if class, err := GetJamoClass(0x115F); err != nil || class != Lead {
		t.Fatalf("lead filler should classify as lead, got %v (%v)", class, err)
	}
	if class, err := GetJamoClass(0x1160); err != nil || class != Vowel {
		t.Fatalf("vowel filler should classify as vowel, got %v (%v)", class, err)
	}
}

func TestGetJamoClassExtended(t *testing.T) {
	cases := []struct {
		r    rune
		want JamoClass
	}{
		{0xA960, Lead},
		{0xA97C, Lead},
		{0xD7B0, Vowel},
		{0xD7C6, Vowel},
		{0xD7CB, Tail},
		{0xD7FB, Tail},
	}
	for _, c := range cases {
		if class, err := GetJamoClass(c.r); err != nil || class != c.want {
			t.Fatalf("U+%04X should classify as %v, got %v (%v)", c.r, c.want, class, err)
		}
	}
}

func TestGetJamoClassInvalid(t *testing.T) {
	invalid := []rune{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 'a', '가', 'ㄱ', 0xD7C7, 0x10FFFF}
	for _, r := range invalid {
		_, err := GetJamoClass(r)
		if err == nil {
			t.Fatalf("U+%04X should not have a jamo class", r)
		}
		var invErr *InvalidJamoError
		if !errors.As(err, &invErr) {
			t.Fatalf("U+%04X should fail with *InvalidJamoError, got %T", r, err)
		}
		if invErr.Codepoint != r {
			t.Fatalf("error should carry U+%04X, carries U+%04X", r, invErr.Codepoint)
		}
	}
}

func TestIsJamo(t *testing.T) {
	for _, r := range modernLeads + modernVowels + modernTails {
		if !IsJamo(r) {
			t.Fatalf("U+%04X should be jamo", r)
		}
	}
	cases := []struct {
		r    rune
		want bool
	}{
		{0x1100, true},
		{0x11FF, true},
		{0x3131, true},  // HCJ counts as jamo
		{0x3164, false}, // reserved Hangul filler
		{0xA960, true},
		{0xD7C7, false}, // gap between the extension ranges
		{0xD7CB, true},
		{0xD7FB, true},
		{'가', false},
		{'h', false},
	}
	for _, c := range cases {
		if IsJamo(c.r) != c.want {
			t.Fatalf("IsJamo(U+%04X) should be %v", c.r, c.want)
		}
	}
}

func TestIsJamoModern(t *testing.T) {
	for _, r := range modernLeads + modernVowels + modernTails {
		if !IsJamoModern(r) {
			t.Fatalf("U+%04X should be modern jamo", r)
		}
	}
	for _, r := range []rune{0x1113, 0x115F, 0x1160, 0x11C3, 0xA960, 0xD7B0} {
		if IsJamoModern(r) {
			t.Fatalf("U+%04X should not be modern jamo", r)
		}
	}
	if !IsJamoModern('ㄱ') {
		t.Fatalf("modern HCJ should count as modern jamo")
	}
}

func TestIsHCJ(t *testing.T) {
	cases := []struct {
		r    rune
		want bool
	}{
		{0x3131, true},
		{0x3163, true},
		{0x3164, false},
		{0x3165, true},
		{0x318E, true},
		{0x318F, false},
		{0x1100, false},
	}
	for _, c := range cases {
		if IsHCJ(c.r) != c.want {
			t.Fatalf("IsHCJ(U+%04X) should be %v", c.r, c.want)
		}
	}
	if !IsHCJModern('ㄱ') || !IsHCJModern('ㅣ') {
		t.Fatalf("modern HCJ bounds misclassified")
	}
	if IsHCJModern(0x3165) {
		t.Fatalf("archaic HCJ should not be modern")
	}
}

func TestIsHangulChar(t *testing.T) {
	for _, r := range "가나다한글힣" {
		if !IsHangulChar(r) {
			t.Fatalf("U+%04X should be a Hangul syllable", r)
		}
	}
	for _, r := range "ㄱㄴㅓhᆩ" {
		if IsHangulChar(r) {
			t.Fatalf("U+%04X should not be a Hangul syllable", r)
		}
	}
	if IsHangulChar(0xABFF) || IsHangulChar(0xD7A4) {
		t.Fatalf("syllable block bounds misclassified")
	}
}

func TestJamoLists(t *testing.T) {
	if got := string(LeadsModern()); got != modernLeads {
		t.Fatalf("LeadsModern should enumerate the 19 modern leads, is %q", got)
	}
	if got := string(VowelsModern()); got != modernVowels {
		t.Fatalf("VowelsModern should enumerate the 21 modern vowels, is %q", got)
	}
	if got := string(TailsModern()); got != modernTails {
		t.Fatalf("TailsModern should enumerate the 27 modern tails, is %q", got)
	}
	for _, r := range Leads() {
		if class, err := GetJamoClass(r); err != nil || class != Lead {
			t.Fatalf("Leads() yields U+%04X which does not classify as lead", r)
		}
		if r == leadFiller {
			t.Fatalf("the lead filler should not be enumerated")
		}
	}
	for _, r := range Vowels() {
		if class, err := GetJamoClass(r); err != nil || class != Vowel {
			t.Fatalf("Vowels() yields U+%04X which does not classify as vowel", r)
		}
		if r == vowelFiller {
			t.Fatalf("the vowel filler should not be enumerated")
		}
	}
	for _, r := range Tails() {
		if class, err := GetJamoClass(r); err != nil || class != Tail {
			t.Fatalf("Tails() yields U+%04X which does not classify as tail", r)
		}
	}
}

func TestJamoClassString(t *testing.T) {
	if Lead.String() != "lead" || Vowel.String() != "vowel" || Tail.String() != "tail" {
		t.Fatalf("unexpected JamoClass names: %v %v %v", Lead, Vowel, Tail)
	}
}
