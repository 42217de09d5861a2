package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/habitsync/internal/client/storage"
	"github.com/iudanet/habitsync/internal/models"
)

func TestSaveGetDevice(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	device := &models.DeviceInfo{
		DeviceID:   "device-1",
		Name:       "laptop",
		Platform:   "linux",
		Active:     true,
		LastSyncAt: now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	require.NoError(t, store.SaveDevice(ctx, device))

	got, err := store.GetDevice(ctx, "device-1")
	require.NoError(t, err)
	assert.Equal(t, device.DeviceID, got.DeviceID)
	assert.Equal(t, device.Name, got.Name)
	assert.Equal(t, device.Platform, got.Platform)
	assert.True(t, got.Active)
	assert.True(t, got.LastSyncAt.Equal(now))
}

func TestGetDevice_NotFound(t *testing.T) {
	store := newTestStorage(t)

	device, err := store.GetDevice(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrDeviceNotFound)
	assert.Nil(t, device)
}

func TestListDevices(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	devices, err := store.ListDevices(ctx)
	require.NoError(t, err)
	assert.Empty(t, devices)

	require.NoError(t, store.SaveDevice(ctx, &models.DeviceInfo{DeviceID: "device-1", Name: "laptop", Active: true}))
	require.NoError(t, store.SaveDevice(ctx, &models.DeviceInfo{DeviceID: "device-2", Name: "phone", Active: false}))

	devices, err = store.ListDevices(ctx)
	require.NoError(t, err)
	// Включая неактивные
	assert.Len(t, devices, 2)
}

func TestDeactivateDevice(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveDevice(ctx, &models.DeviceInfo{DeviceID: "device-1", Name: "laptop", Active: true}))
	require.NoError(t, store.DeactivateDevice(ctx, "device-1"))

	got, err := store.GetDevice(ctx, "device-1")
	require.NoError(t, err)
	assert.False(t, got.Active)
	// Запись не удалена физически, имя сохранено
	assert.Equal(t, "laptop", got.Name)
}

func TestDeactivateDevice_NotFound(t *testing.T) {
	store := newTestStorage(t)

	err := store.DeactivateDevice(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrDeviceNotFound)
}
