// Package kms defines the key configuration attached to every stored file
// and the AES-GCM helpers that use it.
//
// AeadConfig is the single key_config type carried by the DFS protocol. The
// server generates one per file, keeps it wrapped with a key-encryption key
// (see DeriveKEK and Wrap), and hands it to authorized clients, who use it to
// encrypt content before upload and decrypt it after download.
package kms

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tdfs/internal/common"
)

const (
	// KeySize is the AES-256 key length.
	KeySize = 32
	// NonceSize is the standard GCM nonce length.
	NonceSize = 12
)

var ErrInvalidConfig = errors.New("invalid aead config")

// AeadConfig holds the AES-256-GCM parameters for one file.
type AeadConfig struct {
	Key   []byte `json:"key"`
	Nonce []byte `json:"nonce"`
	AD    []byte `json:"ad"`
}

// NewAeadConfig returns a config with a fresh random key and nonce.
// ad is bound into every seal as additional authenticated data and may be nil.
func NewAeadConfig(ad []byte) AeadConfig {
	return AeadConfig{
		Key:   common.GenerateRandByteArray(KeySize),
		Nonce: common.GenerateRandByteArray(NonceSize),
		AD:    append([]byte{}, ad...),
	}
}

// MarshalJSON encodes the byte fields as base64 strings; nil fields are
// written as "" so the result always satisfies UnmarshalJSON.
func (c AeadConfig) MarshalJSON() ([]byte, error) {
	type plain AeadConfig
	return json.Marshal(plain{Key: nonNil(c.Key), Nonce: nonNil(c.Nonce), AD: nonNil(c.AD)})
}

// UnmarshalJSON requires key, nonce and ad to be present and non-null.
// Unknown keys are ignored.
func (c *AeadConfig) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return fmt.Errorf("%w: expected object, got null", ErrInvalidConfig)
	}

	var out AeadConfig
	for _, f := range []struct {
		name string
		dst  *[]byte
	}{
		{"key", &out.Key},
		{"nonce", &out.Nonce},
		{"ad", &out.AD},
	} {
		val, ok := raw[f.name]
		if !ok {
			return fmt.Errorf("%w: missing field %q", ErrInvalidConfig, f.name)
		}
		if bytes.Equal(bytes.TrimSpace(val), []byte("null")) {
			return fmt.Errorf("%w: field %q is null", ErrInvalidConfig, f.name)
		}
		if err := json.Unmarshal(val, f.dst); err != nil {
			return fmt.Errorf("%w: field %q: %w", ErrInvalidConfig, f.name, err)
		}
	}

	*c = out
	return nil
}

// Clone returns a deep copy of c.
func (c AeadConfig) Clone() AeadConfig {
	return AeadConfig{Key: clone(c.Key), Nonce: clone(c.Nonce), AD: clone(c.AD)}
}

// Validate checks key and nonce lengths.
func (c AeadConfig) Validate() error {
	if len(c.Key) != KeySize {
		return fmt.Errorf("%w: key must be %d bytes, got %d", ErrInvalidConfig, KeySize, len(c.Key))
	}
	if len(c.Nonce) != NonceSize {
		return fmt.Errorf("%w: nonce must be %d bytes, got %d", ErrInvalidConfig, NonceSize, len(c.Nonce))
	}
	return nil
}

// Seal encrypts plaintext with the configured key, nonce and AD.
func (c AeadConfig) Seal(plaintext []byte) ([]byte, error) {
	aead, err := c.aead()
	if err != nil {
		return nil, err
	}
	return aead.Seal(nil, c.Nonce, plaintext, c.AD), nil
}

// Open decrypts and authenticates ciphertext produced by Seal.
func (c AeadConfig) Open(ciphertext []byte) ([]byte, error) {
	aead, err := c.aead()
	if err != nil {
		return nil, err
	}
	return aead.Open(nil, c.Nonce, ciphertext, c.AD)
}

func (c AeadConfig) aead() (cipher.AEAD, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(c.Key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

func nonNil(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	return b
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
