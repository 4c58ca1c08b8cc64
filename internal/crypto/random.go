package crypto

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrRandomSource is returned when the secure random generator cannot be read.
// There is no fallback to a weaker generator: callers must surface it.
var ErrRandomSource = errors.New("secure random source unavailable")

// Source yields uniformly distributed indexes in [0, n).
type Source interface {
	Intn(n int) (int, error)
}

// SecureSource draws indexes from a cryptographically secure byte stream.
// The zero value reads from crypto/rand, which is safe for concurrent use.
type SecureSource struct {
	Reader io.Reader
}

// Default is the process-wide source used by the package-level helpers.
var Default Source = SecureSource{}

const drawSpan = uint64(1) << 32

// Intn returns a uniform integer in [0, n). Draws are 32 bits wide and values
// past the largest multiple of n are rejected, so no index is favored.
// It panics if n is not in (0, 2^32].
func (s SecureSource) Intn(n int) (int, error) {
	if n <= 0 || uint64(n) > drawSpan {
		panic(fmt.Sprintf("crypto: invalid bound %d", n))
	}
	if n == 1 {
		return 0, nil
	}

	r := s.Reader
	if r == nil {
		r = rand.Reader
	}

	bound := uint64(n)
	limit := drawSpan - drawSpan%bound

	var buf [4]byte
	for {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrRandomSource, err)
		}
		v := uint64(binary.BigEndian.Uint32(buf[:]))
		if v < limit {
			return int(v % bound), nil
		}
	}
}
