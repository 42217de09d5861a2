package models

import "time"

// DeviceInfo представляет участвующее в синхронизации устройство.
// Создается при первом контакте, обновляется после каждого успешного
// цикла, никогда не удаляется физически (только мягкая деактивация).
type DeviceInfo struct {
	LastSyncAt time.Time `json:"last_sync_at"` // LastSyncAt время последнего успешного цикла
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	DeviceID   string    `json:"device_id"` // UUID устройства
	Name       string    `json:"name"`      // отображаемое имя
	Platform   string    `json:"platform"`  // тег платформы ("linux", "android", ...)
	SecretHash string    `json:"-"`         // bcrypt хеш pairing secret (только на сервере)
	Active     bool      `json:"active"`
}
