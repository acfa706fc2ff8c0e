// Package roundid generates round identifiers: UUIDv7 values written as 26
// characters of Crockford base32, so they sort by creation time.
package roundid

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Crockford's base32, lower case as in TypeID
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length is the size of an encoded identifier
const Length = 26

// New returns a fresh identifier. If the UUIDv7 clock source fails it
// falls back to a random UUID, which is still unique but unordered.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return Encode(id)
}

// Encode writes a UUID as 26 base32 characters. The 128 bits are padded with
// two leading zero bits, so the first character is always 0-7.
func Encode(id uuid.UUID) string {
	hi := binary.BigEndian.Uint64(id[:8])
	lo := binary.BigEndian.Uint64(id[8:])

	out := make([]byte, Length)
	for i := Length - 1; i >= 0; i-- {
		out[i] = alphabet[lo&0x1f]
		lo = lo>>5 | hi<<59
		hi >>= 5
	}
	return string(out)
}

// Parse decodes an identifier back into its UUID
func Parse(s string) (uuid.UUID, error) {
	if err := Validate(s); err != nil {
		return uuid.UUID{}, err
	}
	var hi, lo uint64
	for i := 0; i < Length; i++ {
		v := uint64(strings.IndexByte(alphabet, s[i]))
		hi = hi<<5 | lo>>59
		lo = lo<<5 | v
	}
	var id uuid.UUID
	binary.BigEndian.PutUint64(id[:8], hi)
	binary.BigEndian.PutUint64(id[8:], lo)
	return id, nil
}

// Validate checks that s is 26 base32 characters encoding at most 128 bits
func Validate(s string) error {
	if len(s) != Length {
		return fmt.Errorf("round ID must be exactly %d characters, got %d", Length, len(s))
	}
	if s[0] > '7' {
		return fmt.Errorf("round ID first character must be 0-7, got %c", s[0])
	}
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(alphabet, s[i]) < 0 {
			return fmt.Errorf("invalid character %c at position %d", s[i], i)
		}
	}
	return nil
}
