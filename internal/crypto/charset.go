package crypto

// Base character classes, in composition order.
const (
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Digits    = "0123456789"
	// Symbols is the printable ASCII that is neither a letter nor a digit,
	// space included, so the four classes together cover all 95 printable
	// ASCII characters.
	Symbols = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~ "

	// Alphanumeric is the fallback pool when no character type is selected.
	Alphanumeric = Uppercase + Lowercase + Digits
	// FullPool is every base class combined.
	FullPool = Uppercase + Lowercase + Digits + Symbols
)

// Pronounceable pools. Together they partition Lowercase.
const (
	Consonants = "bcdfghjklmnpqrstvwxyz"
	Vowels     = "aeiou"
)

// Compose concatenates the enabled character classes in the fixed order
// uppercase, lowercase, digits, symbols. It returns "" when nothing is
// enabled; Generate substitutes Alphanumeric in that case.
func Compose(opts GeneratorOptions) string {
	var pool string
	if opts.Uppercase {
		pool += Uppercase
	}
	if opts.Lowercase {
		pool += Lowercase
	}
	if opts.Numbers {
		pool += Digits
	}
	if opts.Symbols {
		pool += Symbols
	}
	return pool
}
