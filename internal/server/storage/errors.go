package storage

import "errors"

// Ошибки серверного хранилища
var (
	// ErrChangeNotFound возвращается, когда запись изменения не найдена
	ErrChangeNotFound = errors.New("change not found")

	// ErrDeviceNotFound возвращается, когда устройство не зарегистрировано
	ErrDeviceNotFound = errors.New("device not found")

	// ErrDeviceAlreadyExists возвращается при повторной регистрации device_id
	ErrDeviceAlreadyExists = errors.New("device already exists")
)
