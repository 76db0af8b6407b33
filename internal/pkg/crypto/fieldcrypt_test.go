package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "0123456789abcdef0123456789abcdef"

func strPtr(s string) *string { return &s }

func TestCodec_RoundTrip(t *testing.T) {
	t.Parallel()
	codec := NewCodec(testKey)

	cases := []string{
		"12345678Z",
		"ES9121000418450200051332",
		"short",
		"exactly sixteen!",
		strings.Repeat("long-value-", 50),
		"unicode: áéíóú ñ 漢字",
	}

	for _, plaintext := range cases {
		token, err := codec.Encrypt(strPtr(plaintext))
		require.NoError(t, err)
		require.NotNil(t, token)
		assert.Contains(t, *token, ":")
		assert.NotContains(t, *token, plaintext)

		out := codec.Decrypt(token)
		require.NotNil(t, out)
		assert.Equal(t, plaintext, *out)
	}
}

func TestCodec_FreshIVPerCall(t *testing.T) {
	t.Parallel()
	codec := NewCodec(testKey)

	first, err := codec.Encrypt(strPtr("same input"))
	require.NoError(t, err)
	second, err := codec.Encrypt(strPtr("same input"))
	require.NoError(t, err)

	assert.NotEqual(t, *first, *second)
}

func TestCodec_NullPropagation(t *testing.T) {
	t.Parallel()
	codec := NewCodec(testKey)

	token, err := codec.Encrypt(nil)
	assert.NoError(t, err)
	assert.Nil(t, token)

	token, err = codec.Encrypt(strPtr(""))
	assert.NoError(t, err)
	assert.Nil(t, token)

	assert.Nil(t, codec.Decrypt(nil))
	assert.Nil(t, codec.Decrypt(strPtr("")))
}

func TestCodec_LegacyPlaintextPassthrough(t *testing.T) {
	t.Parallel()
	codec := NewCodec(testKey)

	out := codec.Decrypt(strPtr("plain legacy value"))
	require.NotNil(t, out)
	assert.Equal(t, "plain legacy value", *out)
}

func TestCodec_TamperedTokenReturnsNil(t *testing.T) {
	t.Parallel()
	codec := NewCodec(testKey)

	// Garbage after the separator must decrypt to nil, never panic or error.
	assert.Nil(t, codec.Decrypt(strPtr("00112233445566778899aabbccddeeff:garbage")))
	assert.Nil(t, codec.Decrypt(strPtr("not-hex:deadbeef")))
	assert.Nil(t, codec.Decrypt(strPtr(":")))

	// Valid hex but wrong ciphertext length.
	assert.Nil(t, codec.Decrypt(strPtr("00112233445566778899aabbccddeeff:deadbeef")))

	// Flip a ciphertext byte: padding check must reject it.
	token, err := codec.Encrypt(strPtr("tamper me"))
	require.NoError(t, err)
	tampered := (*token)[:len(*token)-2] + "00"
	if tampered == *token {
		tampered = (*token)[:len(*token)-2] + "11"
	}
	assert.Nil(t, codec.Decrypt(&tampered))
}

func TestCodec_WrongKeyReturnsNil(t *testing.T) {
	t.Parallel()
	codec := NewCodec(testKey)
	other := NewCodec("ffffffffffffffffffffffffffffffff")

	token, err := codec.Encrypt(strPtr("secret"))
	require.NoError(t, err)

	// A wrong key yields nil almost always; on the rare chance the random
	// plaintext carries valid padding it must still never equal the original.
	if out := other.Decrypt(token); out != nil {
		assert.NotEqual(t, "secret", *out)
	}
}

func TestCodec_InvalidKeyLengthFailsEncrypt(t *testing.T) {
	t.Parallel()
	codec := NewCodec("too-short")

	token, err := codec.Encrypt(strPtr("anything"))
	assert.Nil(t, token)
	assert.ErrorIs(t, err, ErrEncryptionFailure)
}

func TestCodec_SelfTest(t *testing.T) {
	t.Parallel()

	assert.NoError(t, NewCodec(testKey).SelfTest())
	assert.ErrorIs(t, NewCodec("bad key").SelfTest(), ErrEncryptionFailure)
}
