package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/habitsync/internal/crypto"
	"github.com/iudanet/habitsync/internal/models"
	"github.com/iudanet/habitsync/internal/server/storage"
	"github.com/iudanet/habitsync/internal/validation"
	"github.com/iudanet/habitsync/pkg/api"
)

// DevicesHandler обрабатывает регистрацию и список устройств
type DevicesHandler struct {
	logger      *slog.Logger
	devices     storage.DeviceStorage
	jwtConfig   JWTConfig
	pairingHash string
}

// NewDevicesHandler создает новый handler для устройств.
// pairingHash — bcrypt хеш pairing secret установки.
func NewDevicesHandler(logger *slog.Logger, devices storage.DeviceStorage, jwtConfig JWTConfig, pairingHash string) *DevicesHandler {
	return &DevicesHandler{
		logger:      logger,
		devices:     devices,
		jwtConfig:   jwtConfig,
		pairingHash: pairingHash,
	}
}

// Register обрабатывает POST /api/v1/devices/register
// Регистрация устройства по pairing secret. Повторная регистрация
// известного device_id переиздает токен (переустановка клиента).
func (h *DevicesHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Парсим request body
	var req api.RegisterDeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode register request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	// Валидация device_id
	if _, err := uuid.Parse(req.DeviceID); err != nil {
		h.logger.WarnContext(ctx, "invalid device id", slog.String("device_id", req.DeviceID))
		h.sendError(w, "device_id must be a valid UUID", http.StatusBadRequest)
		return
	}

	// Валидация имени устройства
	if err := validation.ValidateDeviceName(req.Name); err != nil {
		h.logger.WarnContext(ctx, "invalid device name", slog.String("name", req.Name), slog.Any("error", err))
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Проверяем pairing secret установки
	if err := crypto.VerifyPairingSecret(req.Secret, h.pairingHash); err != nil {
		h.logger.WarnContext(ctx, "pairing secret rejected",
			slog.String("device_id", req.DeviceID),
			slog.String("name", req.Name))
		h.sendError(w, "invalid pairing secret", http.StatusUnauthorized)
		return
	}

	// Ищем существующее устройство
	device, err := h.devices.GetDevice(ctx, req.DeviceID)
	statusCode := http.StatusOK

	switch {
	case err == nil:
		// Переустановка клиента: устройство известно, переиздаем токен
		h.logger.InfoContext(ctx, "device re-registered",
			slog.String("device_id", device.DeviceID),
			slog.String("name", device.Name))

	case errors.Is(err, storage.ErrDeviceNotFound):
		// Первая регистрация устройства
		secretHash, hashErr := crypto.HashPairingSecret(req.Secret)
		if hashErr != nil {
			h.logger.ErrorContext(ctx, "failed to hash pairing secret", slog.Any("error", hashErr))
			h.sendError(w, "internal server error", http.StatusInternalServerError)
			return
		}

		device = &models.DeviceInfo{
			DeviceID:   req.DeviceID,
			Name:       req.Name,
			Platform:   req.Platform,
			SecretHash: secretHash,
			Active:     true,
			CreatedAt:  time.Now().UTC(),
		}

		if err := h.devices.CreateDevice(ctx, device); err != nil {
			if errors.Is(err, storage.ErrDeviceAlreadyExists) {
				// Гонка двух регистраций одного device_id
				h.sendError(w, "device already registered", http.StatusConflict)
				return
			}
			h.logger.ErrorContext(ctx, "failed to create device", slog.Any("error", err))
			h.sendError(w, "internal server error", http.StatusInternalServerError)
			return
		}

		statusCode = http.StatusCreated
		h.logger.InfoContext(ctx, "device registered",
			slog.String("device_id", device.DeviceID),
			slog.String("name", device.Name),
			slog.String("platform", device.Platform))

	default:
		h.logger.ErrorContext(ctx, "failed to get device", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Генерируем JWT access token устройства
	accessToken, expiresIn, err := GenerateAccessToken(h.jwtConfig, device.DeviceID, device.Name)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate access token", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.RegisterDeviceResponse{
		Device:      toAPIDevice(device),
		AccessToken: accessToken,
		ExpiresIn:   expiresIn,
	}

	h.sendJSON(w, resp, statusCode)
}

// List обрабатывает GET /api/v1/devices
// Возвращает все известные серверу устройства, включая неактивные
func (h *DevicesHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	devices, err := h.devices.ListDevices(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list devices", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.ListDevicesResponse{
		Devices: make([]api.DeviceInfo, 0, len(devices)),
	}
	for _, device := range devices {
		resp.Devices = append(resp.Devices, toAPIDevice(device))
	}

	h.sendJSON(w, resp, http.StatusOK)
}

// toAPIDevice конвертирует модель устройства в API формат
func toAPIDevice(device *models.DeviceInfo) api.DeviceInfo {
	return api.DeviceInfo{
		DeviceID:   device.DeviceID,
		Name:       device.Name,
		Platform:   device.Platform,
		Active:     device.Active,
		LastSyncAt: device.LastSyncAt,
		CreatedAt:  device.CreatedAt,
	}
}

// sendJSON отправляет JSON ответ
func (h *DevicesHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func (h *DevicesHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	h.sendJSON(w, resp, statusCode)
}
