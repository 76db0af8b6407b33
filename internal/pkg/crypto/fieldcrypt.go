package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// ErrEncryptionFailure indicates the codec cannot safely encrypt, either
// because the configured key is unusable or the cipher failed. Callers must
// not persist plaintext when they receive it.
var ErrEncryptionFailure = errors.New("field encryption failure")

// Codec encrypts and decrypts nullable string fields (SSN, IBAN) for at-rest
// storage. Tokens are "<ivHex>:<ciphertextHex>" using AES-256-CBC with a
// fresh random IV per call.
//
// Encrypt returns an error when it cannot produce a token; Decrypt never
// fails: corrupted or tampered tokens decrypt to nil, and any stored value
// without a ':' is treated as legacy plaintext and passed through unchanged.
type Codec struct {
	key []byte
}

// NewCodec creates a codec from the configured key. Key validation happens
// per-call so a misconfigured codec surfaces through SelfTest at bootstrap.
func NewCodec(key string) *Codec {
	return &Codec{key: []byte(key)}
}

// SelfTest round-trips a known string. It must be run once at process start
// and the process must abort if it fails.
func (c *Codec) SelfTest() error {
	probe := "field-encryption-self-test"
	token, err := c.Encrypt(&probe)
	if err != nil {
		return err
	}
	out := c.Decrypt(token)
	if out == nil || *out != probe {
		return fmt.Errorf("%w: self-test round trip mismatch", ErrEncryptionFailure)
	}
	return nil
}

// Encrypt encrypts a nullable string into an "ivHex:cipherHex" token.
// Nil or empty input yields nil with no error.
func (c *Codec) Encrypt(plaintext *string) (*string, error) {
	if plaintext == nil || *plaintext == "" {
		return nil, nil
	}

	if len(c.key) != 32 {
		return nil, fmt.Errorf("%w: key must be exactly 32 bytes, got %d", ErrEncryptionFailure, len(c.key))
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncryptionFailure, err)
	}

	iv := make([]byte, aes.BlockSize)
	if _, err := rand.Read(iv); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncryptionFailure, err)
	}

	padded := pkcs7Pad([]byte(*plaintext), aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	token := hex.EncodeToString(iv) + ":" + hex.EncodeToString(ciphertext)
	return &token, nil
}

// Decrypt reverses Encrypt. Nil or empty input yields nil; input without a
// ':' is returned unchanged (legacy plaintext); any decryption failure
// yields nil and is never an error.
func (c *Codec) Decrypt(token *string) *string {
	if token == nil || *token == "" {
		return nil
	}

	ivHex, cipherHex, found := strings.Cut(*token, ":")
	if !found {
		return token
	}

	iv, err := hex.DecodeString(ivHex)
	if err != nil || len(iv) != aes.BlockSize {
		return nil
	}
	ciphertext, err := hex.DecodeString(cipherHex)
	if err != nil || len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return nil
	}

	padded := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(padded, ciphertext)

	plaintext, ok := pkcs7Unpad(padded, aes.BlockSize)
	if !ok {
		return nil
	}

	out := string(plaintext)
	return &out
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(padLen)}, padLen)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, bool) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, false
	}
	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize || padLen > len(data) {
		return nil, false
	}
	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, false
		}
	}
	return data[:len(data)-padLen], true
}
