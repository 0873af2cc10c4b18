package kms

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/json"

	"github.com/dmitrijs2005/tdfs/internal/common"
	"golang.org/x/crypto/argon2"
)

// DeriveKEK derives the server's key-encryption key from a secret and salt
// with argon2id. The same inputs always yield the same 32-byte key.
func DeriveKEK(secret, salt []byte) []byte {
	return argon2.IDKey(secret, salt, 1, 64*1024, 4, KeySize)
}

// Wrap serializes cfg to JSON and encrypts it with kek using AES-GCM and a
// random nonce. The ciphertext and nonce are returned separately so they
// can be stored side by side.
func Wrap(kek []byte, cfg AeadConfig) (wrapped, nonce []byte, err error) {
	plaintext, err := json.Marshal(cfg)
	if err != nil {
		return nil, nil, err
	}
	defer common.WipeByteArray(plaintext)

	block, err := aes.NewCipher(kek)
	if err != nil {
		return nil, nil, err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, nil, err
	}

	nonce = common.GenerateRandByteArray(aesgcm.NonceSize())
	return aesgcm.Seal(nil, nonce, plaintext, nil), nonce, nil
}

// Unwrap reverses Wrap.
func Unwrap(kek, wrapped, nonce []byte) (AeadConfig, error) {
	var cfg AeadConfig

	block, err := aes.NewCipher(kek)
	if err != nil {
		return cfg, err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return cfg, err
	}

	plaintext, err := aesgcm.Open(nil, nonce, wrapped, nil)
	if err != nil {
		return cfg, err
	}
	defer common.WipeByteArray(plaintext)

	if err := json.Unmarshal(plaintext, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
