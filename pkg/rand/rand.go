// Package rand generates verification codes and temporary passwords from the
// crypto/rand source.
package rand

import (
	"crypto/rand"
	"math/big"
)

const (
	lower   = "abcdefghijklmnopqrstuvwxyz"
	upper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits  = "0123456789"
	special = "@#$!%*?&"
)

// Digits returns a string of n random decimal digits, suitable as a one time
// verification code.
func Digits(n int) (string, error) {
	out := make([]byte, n)
	for i := range out {
		idx, err := intn(len(digits))
		if err != nil {
			return "", err
		}
		out[i] = digits[idx]
	}
	return string(out), nil
}

// Password returns a random password of the given length containing at least
// one lowercase letter, one uppercase letter, one digit and one special
// character. Lengths below four are raised to four.
func Password(length int) (string, error) {
	if length < 4 {
		length = 4
	}
	all := lower + upper + digits + special

	out := make([]byte, 0, length)
	for _, set := range []string{lower, upper, digits, special} {
		idx, err := intn(len(set))
		if err != nil {
			return "", err
		}
		out = append(out, set[idx])
	}
	for len(out) < length {
		idx, err := intn(len(all))
		if err != nil {
			return "", err
		}
		out = append(out, all[idx])
	}
	if err := shuffle(out); err != nil {
		return "", err
	}
	return string(out), nil
}

func shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := intn(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}

func intn(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}
