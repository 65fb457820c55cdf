// Package langdetect gates review text on language. Ethiopic script is
// rejected outright; everything else goes through whatlanggo.
package langdetect

import "github.com/abadojack/whatlanggo"

type Detector struct{}

func New() *Detector {
	return &Detector{}
}

// EnglishOK reports whether text reads as English. Only a positive English
// classification passes; an unsure call drops the row the same as a
// confident non-English one. Deterministic: depends on the text content
// only.
func (d *Detector) EnglishOK(text string) bool {
	if text == "" {
		return false
	}
	if containsEthiopic(text) {
		return false
	}
	return whatlanggo.Detect(text).Lang == whatlanggo.Eng
}

// containsEthiopic reports whether any rune falls in the Ethiopic block
// (U+1200–U+137F), the dominant non-English script in this dataset.
func containsEthiopic(s string) bool {
	for _, r := range s {
		if r >= 0x1200 && r <= 0x137F {
			return true
		}
	}
	return false
}
