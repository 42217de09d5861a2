// Package crypto содержит работу с pairing secret установки.
// Secret известен всем устройствам одного пользователя и служит
// единственным фактором допуска устройства в группу синхронизации.
package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPairingSecret хеширует pairing secret с использованием bcrypt.
// Используется на сервере при регистрации первого устройства.
func HashPairingSecret(secret string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("pairing secret cannot be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash pairing secret: %w", err)
	}

	return string(hash), nil
}

// VerifyPairingSecret проверяет, соответствует ли secret сохраненному хешу.
// Используется на сервере при регистрации каждого следующего устройства.
func VerifyPairingSecret(secret, hashedSecret string) error {
	if secret == "" {
		return fmt.Errorf("pairing secret cannot be empty")
	}
	if hashedSecret == "" {
		return fmt.Errorf("hashed pairing secret cannot be empty")
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashedSecret), []byte(secret))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return fmt.Errorf("invalid pairing secret")
		}
		return fmt.Errorf("failed to verify pairing secret: %w", err)
	}

	return nil
}
