package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// NonceSize - размер nonce для AES-GCM (12 bytes стандартный размер)
const NonceSize = 12

// SecretBox шифрует короткие секреты (например, секреты webhook) перед сохранением в БД.
// Формат: base64(nonce || ciphertext || tag)
type SecretBox struct {
	aead cipher.AEAD
}

// NewSecretBox создает SecretBox с ключом AES-256
func NewSecretBox(key []byte) (*SecretBox, error) {
	if len(key) != KeyLen {
		return nil, fmt.Errorf("encryption key must be %d bytes, got %d", KeyLen, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &SecretBox{aead: aead}, nil
}

// NewSecretBoxFromPassphrase derives the key with DeriveKey
func NewSecretBoxFromPassphrase(passphrase string) (*SecretBox, error) {
	key, err := DeriveKey(passphrase)
	if err != nil {
		return nil, err
	}
	return NewSecretBox(key)
}

// Seal шифрует plaintext и возвращает base64 строку
func (b *SecretBox) Seal(plaintext string) (string, error) {
	if plaintext == "" {
		return "", fmt.Errorf("plaintext cannot be empty")
	}

	nonce := make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	// nonce идет префиксом, Open достает его обратно
	sealed := b.aead.Seal(nonce, nonce, []byte(plaintext), nil)

	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Open расшифровывает значение, полученное из Seal
func (b *SecretBox) Open(sealed string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("failed to decode base64: %w", err)
	}
	if len(raw) < NonceSize {
		return "", fmt.Errorf("encrypted data too short")
	}

	plaintext, err := b.aead.Open(nil, raw[:NonceSize], raw[NonceSize:], nil)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt: authentication failed or corrupted data: %w", err)
	}

	return string(plaintext), nil
}
