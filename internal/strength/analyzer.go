package strength

import (
	"strings"
	"unicode/utf8"

	"github.com/vaultpass/passgen-go/internal/crypto"
)

// Suggestions, in the order Analyze emits them.
const (
	SuggestMinLength  = "Use at least 8 characters"
	SuggestLonger     = "Consider using 12 or more characters"
	SuggestUppercase  = "Add uppercase letters"
	SuggestLowercase  = "Add lowercase letters"
	SuggestNumbers    = "Add numbers"
	SuggestSymbols    = "Add symbols"
	SuggestComplexity = "Increase overall complexity"
)

const complexityThreshold = 50

// Analysis is the strength report for a single password.
type Analysis struct {
	Length       int      `json:"length"`
	HasUppercase bool     `json:"has_uppercase"`
	HasLowercase bool     `json:"has_lowercase"`
	HasNumbers   bool     `json:"has_numbers"`
	HasSymbols   bool     `json:"has_symbols"`
	Entropy      float64  `json:"entropy"`
	Strength     Tier     `json:"strength"`
	Diversity    float64  `json:"diversity"`
	Suggestions  []string `json:"suggestions"`
}

// Analyze inspects password and estimates its entropy from the sizes of the
// character classes it uses, not from its own distinct characters. Length
// counts runes. Characters outside the four classes add length but no pool.
func Analyze(password string) Analysis {
	a := Analysis{Length: utf8.RuneCountInString(password)}

	for _, ch := range password {
		switch {
		case strings.ContainsRune(crypto.Uppercase, ch):
			a.HasUppercase = true
		case strings.ContainsRune(crypto.Lowercase, ch):
			a.HasLowercase = true
		case strings.ContainsRune(crypto.Digits, ch):
			a.HasNumbers = true
		case strings.ContainsRune(crypto.Symbols, ch):
			a.HasSymbols = true
		}
	}

	pool, classes := 0, 0
	for _, c := range []struct {
		present bool
		size    int
	}{
		{a.HasUppercase, len(crypto.Uppercase)},
		{a.HasLowercase, len(crypto.Lowercase)},
		{a.HasNumbers, len(crypto.Digits)},
		{a.HasSymbols, len(crypto.Symbols)},
	} {
		if c.present {
			pool += c.size
			classes++
		}
	}

	a.Entropy = Entropy(a.Length, pool)
	a.Strength = Classify(a.Entropy)
	a.Diversity = float64(classes) / 4
	a.Suggestions = suggest(a)
	return a
}

func suggest(a Analysis) []string {
	suggestions := []string{}
	if a.Length < 8 {
		suggestions = append(suggestions, SuggestMinLength)
	}
	if a.Length < 12 {
		suggestions = append(suggestions, SuggestLonger)
	}
	if !a.HasUppercase {
		suggestions = append(suggestions, SuggestUppercase)
	}
	if !a.HasLowercase {
		suggestions = append(suggestions, SuggestLowercase)
	}
	if !a.HasNumbers {
		suggestions = append(suggestions, SuggestNumbers)
	}
	if !a.HasSymbols {
		suggestions = append(suggestions, SuggestSymbols)
	}
	if a.Entropy < complexityThreshold {
		suggestions = append(suggestions, SuggestComplexity)
	}
	return suggestions
}
