package crypto

import (
	"fmt"

	"golang.org/x/crypto/argon2"
)

// Параметры Argon2id для деривации серверного ключа шифрования
const (
	Argon2Time    = 1
	Argon2Memory  = 64 * 1024
	Argon2Threads = 4
	// KeyLen длина ключа AES-256
	KeyLen = 32
)

// keyContext отделяет ключ шифрования секретов от других применений passphrase
var keyContext = []byte("budgetkeeper:webhook-secret")

// DeriveKey получает 32-байтный ключ из passphrase конфигурации.
// Один и тот же passphrase всегда дает один и тот же ключ.
func DeriveKey(passphrase string) ([]byte, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("passphrase cannot be empty")
	}

	return argon2.IDKey([]byte(passphrase), keyContext, Argon2Time, Argon2Memory, Argon2Threads, KeyLen), nil
}
