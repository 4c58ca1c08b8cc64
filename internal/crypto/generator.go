package crypto

import (
	"strings"
)

const (
	MinLength     = 4
	MaxLength     = 128
	DefaultLength = 16

	MinCount     = 1
	MaxCount     = 1000
	DefaultCount = 10
)

// GeneratorOptions configures the password generator.
type GeneratorOptions struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Numbers   bool
	Symbols   bool
}

// DefaultOptions returns sensible defaults: 16 characters with all types enabled.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:    DefaultLength,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// Generator builds passwords by drawing every character independently from a Source.
type Generator struct {
	src Source
}

// NewGenerator creates a Generator. A nil src uses Default.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = Default
	}
	return &Generator{src: src}
}

var std = NewGenerator(nil)

// Generate creates a password from the character types selected in opts.
// The length is clamped to [MinLength, MaxLength] and an empty selection
// falls back to the alphanumeric pool.
func (g *Generator) Generate(opts GeneratorOptions) (string, error) {
	pool := Compose(opts)
	if pool == "" {
		pool = Alphanumeric
	}
	return g.draw(ClampLength(opts.Length), []rune(pool))
}

// GenerateFromPool creates a password whose characters are drawn from pool.
// Repeated characters in pool are proportionally more likely. An empty pool
// uses every base class.
func (g *Generator) GenerateFromPool(length int, pool string) (string, error) {
	if pool == "" {
		opts := DefaultOptions()
		opts.Length = length
		return g.Generate(opts)
	}
	return g.draw(ClampLength(length), []rune(pool))
}

// GenerateMultiple runs Generate count times, count clamped to [MinCount, MaxCount].
// Results are not deduplicated.
func (g *Generator) GenerateMultiple(count int, opts GeneratorOptions) ([]string, error) {
	return g.repeat(count, func() (string, error) {
		return g.Generate(opts)
	})
}

// GenerateMultipleFromPool is GenerateMultiple for a caller-supplied pool.
func (g *Generator) GenerateMultipleFromPool(count, length int, pool string) ([]string, error) {
	return g.repeat(count, func() (string, error) {
		return g.GenerateFromPool(length, pool)
	})
}

func (g *Generator) repeat(count int, next func() (string, error)) ([]string, error) {
	count = ClampCount(count)
	passwords := make([]string, 0, count)
	for i := 0; i < count; i++ {
		pw, err := next()
		if err != nil {
			return nil, err
		}
		passwords = append(passwords, pw)
	}
	return passwords, nil
}

// draw appends length characters, each chosen independently from pool.
func (g *Generator) draw(length int, pool []rune) (string, error) {
	var sb strings.Builder
	sb.Grow(length)
	if err := g.appendFrom(&sb, length, pool); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (g *Generator) appendFrom(sb *strings.Builder, n int, pool []rune) error {
	for i := 0; i < n; i++ {
		idx, err := g.src.Intn(len(pool))
		if err != nil {
			return err
		}
		sb.WriteRune(pool[idx])
	}
	return nil
}

// ClampLength bounds a requested length to [MinLength, MaxLength].
func ClampLength(n int) int {
	return clamp(n, MinLength, MaxLength)
}

// ClampCount bounds a batch size to [MinCount, MaxCount].
func ClampCount(n int) int {
	return clamp(n, MinCount, MaxCount)
}

func clamp(n, lo, hi int) int {
	return min(max(n, lo), hi)
}

// Generate creates a password using the default secure source.
func Generate(opts GeneratorOptions) (string, error) {
	return std.Generate(opts)
}

// GenerateFromPool creates a password from pool using the default secure source.
func GenerateFromPool(length int, pool string) (string, error) {
	return std.GenerateFromPool(length, pool)
}

// GenerateMultiple creates count passwords using the default secure source.
func GenerateMultiple(count int, opts GeneratorOptions) ([]string, error) {
	return std.GenerateMultiple(count, opts)
}

// GenerateMultipleFromPool creates count passwords from pool using the default secure source.
func GenerateMultipleFromPool(count, length int, pool string) ([]string, error) {
	return std.GenerateMultipleFromPool(count, length, pool)
}
