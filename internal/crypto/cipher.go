package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

var (
	ErrMissingCipherKey    = errors.New("cipher secret is required")
	ErrMalformedCiphertext = errors.New("malformed or tampered ciphertext")
)

const (
	cipherKeyLength     = 32
	cipherKeyIterations = 4096
)

// cipherKeySalt is a fixed application-level salt. The vault runs with a
// single static key for the process lifetime; there is no per-value key
// derivation and no rotation.
var cipherKeySalt = []byte("drivenpass.cipher.v1")

// Cipher performs reversible field-level encryption of sensitive record
// attributes (credential passwords, card validation codes). A fresh
// random nonce is used per call, so equal plaintexts produce different
// ciphertexts.
type Cipher struct {
	aead cipher.AEAD
}

// NewCipher derives an AES-256 key from the configured secret and builds
// the AEAD. An empty or unusable secret is a startup failure, never a
// per-request one.
func NewCipher(secret string) (*Cipher, error) {
	if secret == "" {
		return nil, ErrMissingCipherKey
	}

	key := pbkdf2.Key([]byte(secret), cipherKeySalt, cipherKeyIterations, cipherKeyLength, sha256.New)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("creating GCM: %w", err)
	}

	return &Cipher{aead: aead}, nil
}

// Encrypt seals the plaintext and returns base64(nonce || ciphertext).
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("generating nonce: %w", err)
	}

	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt reverses Encrypt. Any decode or authentication failure is
// reported as ErrMalformedCiphertext.
func (c *Cipher) Decrypt(encoded string) (string, error) {
	sealed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", ErrMalformedCiphertext
	}

	if len(sealed) < c.aead.NonceSize() {
		return "", ErrMalformedCiphertext
	}

	nonce, ciphertext := sealed[:c.aead.NonceSize()], sealed[c.aead.NonceSize():]
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrMalformedCiphertext
	}

	return string(plaintext), nil
}
