package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCipherMissingSecret(t *testing.T) {
	_, err := NewCipher("")
	assert.ErrorIs(t, err, ErrMissingCipherKey)
}

func TestCipherRoundTrip(t *testing.T) {
	c, err := NewCipher("test-cipher-secret")
	require.NoError(t, err)

	for _, plaintext := range []string{"", "p4ssw0rd", "123", "a much longer secret value with spaces and ünïcödé"} {
		sealed, err := c.Encrypt(plaintext)
		require.NoError(t, err)

		opened, err := c.Decrypt(sealed)
		require.NoError(t, err)
		assert.Equal(t, plaintext, opened)
	}
}

func TestCipherNonDeterministic(t *testing.T) {
	c, err := NewCipher("test-cipher-secret")
	require.NoError(t, err)

	first, err := c.Encrypt("same-plaintext")
	require.NoError(t, err)
	second, err := c.Encrypt("same-plaintext")
	require.NoError(t, err)

	// Equal plaintexts must not produce equal ciphertexts, and both
	// must still decrypt correctly.
	assert.NotEqual(t, first, second)

	opened, err := c.Decrypt(first)
	require.NoError(t, err)
	assert.Equal(t, "same-plaintext", opened)

	opened, err = c.Decrypt(second)
	require.NoError(t, err)
	assert.Equal(t, "same-plaintext", opened)
}

func TestCipherDecryptMalformed(t *testing.T) {
	c, err := NewCipher("test-cipher-secret")
	require.NoError(t, err)

	for _, input := range []string{"not base64 at all!!!", "dG9vc2hvcnQ=", ""} {
		_, err := c.Decrypt(input)
		assert.ErrorIs(t, err, ErrMalformedCiphertext, "input %q", input)
	}
}

func TestCipherDecryptTampered(t *testing.T) {
	c, err := NewCipher("test-cipher-secret")
	require.NoError(t, err)

	sealed, err := c.Encrypt("secret-value")
	require.NoError(t, err)

	tampered := []byte(sealed)
	tampered[len(tampered)-5] ^= 1

	_, err = c.Decrypt(string(tampered))
	assert.ErrorIs(t, err, ErrMalformedCiphertext)
}

func TestCipherWrongKey(t *testing.T) {
	first, err := NewCipher("first-secret")
	require.NoError(t, err)
	second, err := NewCipher("second-secret")
	require.NoError(t, err)

	sealed, err := first.Encrypt("secret-value")
	require.NoError(t, err)

	_, err = second.Decrypt(sealed)
	assert.ErrorIs(t, err, ErrMalformedCiphertext)
}
