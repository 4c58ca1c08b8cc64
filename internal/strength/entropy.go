// Package strength estimates password entropy and classifies it into tiers.
package strength

import (
	"fmt"
	"math"

	"github.com/vaultpass/passgen-go/internal/crypto"
)

// Tier is an ordered strength classification.
type Tier int

const (
	VeryWeak Tier = iota
	Weak
	Fair
	Strong
	VeryStrong
)

// Entropy lower bounds in bits, indexed by Tier. The top tier is open-ended.
var tierBounds = [...]float64{
	VeryWeak:   0,
	Weak:       30,
	Fair:       40,
	Strong:     60,
	VeryStrong: 80,
}

var tierNames = [...]string{
	VeryWeak:   "veryWeak",
	Weak:       "weak",
	Fair:       "fair",
	Strong:     "strong",
	VeryStrong: "veryStrong",
}

func (t Tier) String() string {
	if t < VeryWeak || t > VeryStrong {
		return fmt.Sprintf("Tier(%d)", int(t))
	}
	return tierNames[t]
}

// MarshalText encodes the tier by name.
func (t Tier) MarshalText() ([]byte, error) {
	if t < VeryWeak || t > VeryStrong {
		return nil, fmt.Errorf("invalid strength tier %d", int(t))
	}
	return []byte(tierNames[t]), nil
}

// UnmarshalText decodes a tier name.
func (t *Tier) UnmarshalText(b []byte) error {
	for i, name := range tierNames {
		if name == string(b) {
			*t = Tier(i)
			return nil
		}
	}
	return fmt.Errorf("unknown strength tier %q", b)
}

// LowerBound is the minimum entropy, in bits, for the tier.
func (t Tier) LowerBound() float64 {
	return tierBounds[t]
}

// Tiers lists every tier from weakest to strongest.
func Tiers() []Tier {
	return []Tier{VeryWeak, Weak, Fair, Strong, VeryStrong}
}

// Entropy returns length * log2(poolSize), or 0 when either is non-positive.
func Entropy(length, poolSize int) float64 {
	if length <= 0 || poolSize <= 0 {
		return 0
	}
	return float64(length) * math.Log2(float64(poolSize))
}

// Classify selects the highest tier whose lower bound is at most bits.
func Classify(bits float64) Tier {
	for t := VeryStrong; t > VeryWeak; t-- {
		if bits >= tierBounds[t] {
			return t
		}
	}
	return VeryWeak
}

// PronounceableEntropy is the entropy of a pronounceable password of the given
// final length: consonant and vowel positions alternate, then two digits if
// includeNumbers is set.
func PronounceableEntropy(length int, includeNumbers bool) float64 {
	base := length
	var bits float64
	if includeNumbers {
		base -= crypto.PronounceableDigits
		bits += Entropy(crypto.PronounceableDigits, len(crypto.Digits))
	}
	if base <= 0 {
		return bits
	}
	consonants := (base + 1) / 2
	vowels := base / 2
	return bits + Entropy(consonants, len(crypto.Consonants)) + Entropy(vowels, len(crypto.Vowels))
}

// CharacterSet describes the base classes and the combined pool.
type CharacterSet struct {
	Uppercase      int     `json:"uppercase"`
	Lowercase      int     `json:"lowercase"`
	Digits         int     `json:"digits"`
	Symbols        int     `json:"symbols"`
	Total          int     `json:"total"`
	EntropyPerChar float64 `json:"entropy_per_char"`
}

// CharacterSetInfo reports class sizes and the per-character entropy of the full pool.
func CharacterSetInfo() CharacterSet {
	total := len(crypto.FullPool)
	return CharacterSet{
		Uppercase:      len(crypto.Uppercase),
		Lowercase:      len(crypto.Lowercase),
		Digits:         len(crypto.Digits),
		Symbols:        len(crypto.Symbols),
		Total:          total,
		EntropyPerChar: Entropy(1, total),
	}
}
