// Package validation проверяет пользовательский ввод и поля записей
// изменений до того, как они попадут в журнал или на сервер.
package validation

import (
	"fmt"
	"regexp"
)

// TableNamePattern определяет допустимый формат имени таблицы
// Только строчные латинские буквы, цифры и нижнее подчеркивание,
// первый символ — буква. Длина: 1-64 символа
var TableNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]{0,63}$`)

// DeviceNamePattern определяет допустимый формат имени устройства
// Буквы, цифры, пробел, дефис, точка и нижнее подчеркивание
var DeviceNamePattern = regexp.MustCompile(`^[a-zA-Z0-9 ._-]+$`)

const (
	// MaxDeviceNameLen максимальная длина имени устройства
	MaxDeviceNameLen = 64
	// MaxRecordIDLen максимальная длина идентификатора записи
	MaxRecordIDLen = 128
	// MinSecretLen минимальная длина pairing secret
	MinSecretLen = 8
)

// ValidateTableName проверяет логическое имя таблицы
func ValidateTableName(tableName string) error {
	if tableName == "" {
		return fmt.Errorf("table name cannot be empty")
	}

	if !TableNamePattern.MatchString(tableName) {
		return fmt.Errorf("table name can only contain lowercase letters, numbers and underscores, and must start with a letter")
	}

	return nil
}

// ValidateRecordID проверяет идентификатор записи внутри таблицы
func ValidateRecordID(recordID string) error {
	if recordID == "" {
		return fmt.Errorf("record id cannot be empty")
	}

	if len(recordID) > MaxRecordIDLen {
		return fmt.Errorf("record id must not exceed %d characters", MaxRecordIDLen)
	}

	return nil
}

// ValidateDeviceName проверяет отображаемое имя устройства
func ValidateDeviceName(name string) error {
	if name == "" {
		return fmt.Errorf("device name cannot be empty")
	}

	if len(name) > MaxDeviceNameLen {
		return fmt.Errorf("device name must not exceed %d characters", MaxDeviceNameLen)
	}

	if !DeviceNamePattern.MatchString(name) {
		return fmt.Errorf("device name can only contain letters, numbers, spaces, dots, hyphens and underscores")
	}

	return nil
}

// ValidateHabitName проверяет имя привычки.
// Требования те же, что к имени устройства.
func ValidateHabitName(name string) error {
	if name == "" {
		return fmt.Errorf("habit name cannot be empty")
	}

	if len(name) > MaxDeviceNameLen {
		return fmt.Errorf("habit name must not exceed %d characters", MaxDeviceNameLen)
	}

	if !DeviceNamePattern.MatchString(name) {
		return fmt.Errorf("habit name can only contain letters, numbers, spaces, dots, hyphens and underscores")
	}

	return nil
}

// ValidatePairingSecret проверяет минимальные требования к pairing secret
func ValidatePairingSecret(secret string) error {
	if secret == "" {
		return fmt.Errorf("pairing secret cannot be empty")
	}

	if len(secret) < MinSecretLen {
		return fmt.Errorf("pairing secret must be at least %d characters long", MinSecretLen)
	}

	return nil
}
