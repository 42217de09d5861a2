package api

import "time"

// DeviceInfo представляет зарегистрированное устройство
type DeviceInfo struct {
	LastSyncAt time.Time `json:"last_sync_at"`
	CreatedAt  time.Time `json:"created_at"`
	DeviceID   string    `json:"device_id"`
	Name       string    `json:"name"`     // Name отображаемое имя устройства
	Platform   string    `json:"platform"` // Platform тег платформы ("linux", "android", ...)
	Active     bool      `json:"active"`   // Active false после мягкой деактивации
}

// RegisterDeviceRequest представляет запрос регистрации устройства.
// Secret — pairing secret, известный всем устройствам одной установки.
type RegisterDeviceRequest struct {
	DeviceID string `json:"device_id"`
	Name     string `json:"name"`
	Platform string `json:"platform"`
	Secret   string `json:"secret"`
}

// RegisterDeviceResponse представляет ответ на регистрацию
type RegisterDeviceResponse struct {
	Device      DeviceInfo `json:"device"`
	AccessToken string     `json:"access_token"`
	ExpiresIn   int64      `json:"expires_in"` // ExpiresIn срок действия токена в секундах
}

// ListDevicesResponse представляет список известных серверу устройств
type ListDevicesResponse struct {
	Devices []DeviceInfo `json:"devices"`
}
