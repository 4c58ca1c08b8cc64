package crypto

import "strings"

const (
	MinPronounceableLength     = 6
	MaxPronounceableLength     = 64
	DefaultPronounceableLength = 12

	// PronounceableDigits is the number of digits appended when numbers are included.
	PronounceableDigits = 2
)

var (
	consonantPool = []rune(Consonants)
	vowelPool     = []rune(Vowels)
	digitPool     = []rune(Digits)
)

// GeneratePronounceable alternates consonants and vowels, starting with a
// consonant, and optionally ends with two digits. The result is exactly the
// clamped length.
func (g *Generator) GeneratePronounceable(length int, includeNumbers bool) (string, error) {
	length = ClampPronounceableLength(length)
	base := length
	if includeNumbers {
		base -= PronounceableDigits
	}

	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < base; i++ {
		pool := consonantPool
		if i%2 == 1 {
			pool = vowelPool
		}
		if err := g.appendFrom(&sb, 1, pool); err != nil {
			return "", err
		}
	}
	if includeNumbers {
		if err := g.appendFrom(&sb, PronounceableDigits, digitPool); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

// GenerateMultiplePronounceable runs GeneratePronounceable count times.
func (g *Generator) GenerateMultiplePronounceable(count, length int, includeNumbers bool) ([]string, error) {
	return g.repeat(count, func() (string, error) {
		return g.GeneratePronounceable(length, includeNumbers)
	})
}

// ClampPronounceableLength bounds a length to [MinPronounceableLength, MaxPronounceableLength].
func ClampPronounceableLength(n int) int {
	return clamp(n, MinPronounceableLength, MaxPronounceableLength)
}

// GeneratePronounceable creates a pronounceable password using the default secure source.
func GeneratePronounceable(length int, includeNumbers bool) (string, error) {
	return std.GeneratePronounceable(length, includeNumbers)
}

// GenerateMultiplePronounceable creates count pronounceable passwords using the default secure source.
func GenerateMultiplePronounceable(count, length int, includeNumbers bool) ([]string, error) {
	return std.GenerateMultiplePronounceable(count, length, includeNumbers)
}
