package crypto

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const (
	GeneratedMinLength = 8
	GeneratedMaxLength = 128
)

var (
	ErrLengthTooShort     = errors.New("password length must be at least 8")
	ErrLengthTooLong      = errors.New("password length must be at most 128")
	ErrNoCharacterTypes   = errors.New("at least one character type must be selected")
	ErrLengthInsufficient = errors.New("password length must cover every selected character type")
)

// GeneratorOptions configures random password generation.
type GeneratorOptions struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Numbers   bool
	Symbols   bool
}

// DefaultGeneratorOptions returns 16 characters with all types enabled.
func DefaultGeneratorOptions() GeneratorOptions {
	return GeneratorOptions{Length: 16, Uppercase: true, Lowercase: true, Numbers: true, Symbols: true}
}

// GeneratePassword creates a random password drawn from the selected
// character sets, guaranteeing at least one character of each. All
// randomness comes from crypto/rand.
func GeneratePassword(opts GeneratorOptions) (string, error) {
	switch {
	case opts.Length < GeneratedMinLength:
		return "", ErrLengthTooShort
	case opts.Length > GeneratedMaxLength:
		return "", ErrLengthTooLong
	}

	sets := selectedSets(opts)
	if len(sets) == 0 {
		return "", ErrNoCharacterTypes
	}
	if opts.Length < len(sets) {
		return "", ErrLengthInsufficient
	}

	var pool string
	for _, set := range sets {
		pool += set
	}

	out := make([]byte, opts.Length)
	for i := range out {
		// One guaranteed pick per selected set, then the full pool.
		source := pool
		if i < len(sets) {
			source = sets[i]
		}
		ch, err := randByte(source)
		if err != nil {
			return "", err
		}
		out[i] = ch
	}

	if err := shuffle(out); err != nil {
		return "", err
	}
	return string(out), nil
}

func selectedSets(opts GeneratorOptions) []string {
	var sets []string
	if opts.Uppercase {
		sets = append(sets, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	}
	if opts.Lowercase {
		sets = append(sets, "abcdefghijklmnopqrstuvwxyz")
	}
	if opts.Numbers {
		sets = append(sets, "0123456789")
	}
	if opts.Symbols {
		sets = append(sets, "!@#$%^&*()_+-=[]{}|;:,.<>?")
	}
	return sets
}

func randByte(charset string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, err
	}
	return charset[n.Int64()], nil
}

// shuffle is a Fisher-Yates shuffle backed by crypto/rand.
func shuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return err
		}
		j := n.Int64()
		data[i], data[j] = data[j], data[i]
	}
	return nil
}
