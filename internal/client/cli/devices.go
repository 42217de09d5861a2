package cli

import (
	"context"
	"time"

	"github.com/iudanet/habitsync/internal/models"
)

// runDevices показывает устройства группы синхронизации.
// Свежий список берется с сервера и кешируется локально;
// offline команда показывает кешированный список.
func (c *Cli) runDevices(ctx context.Context) error {
	resp, err := c.apiClient.ListDevices(ctx)
	if err != nil {
		c.io.Println("Server unreachable, showing cached devices.")
		c.io.Println()
		return c.printCachedDevices(ctx)
	}

	// Обновляем локальный кеш
	for _, wire := range resp.Devices {
		device := &models.DeviceInfo{
			DeviceID:   wire.DeviceID,
			Name:       wire.Name,
			Platform:   wire.Platform,
			Active:     wire.Active,
			LastSyncAt: wire.LastSyncAt,
			CreatedAt:  wire.CreatedAt,
		}
		if err := c.devices.SaveDevice(ctx, device); err != nil {
			c.logger.Warn("failed to cache device", "device_id", wire.DeviceID, "error", err)
		}
	}

	c.io.Println("=== Devices ===")
	for _, device := range resp.Devices {
		c.printDevice(device.DeviceID, device.Name, device.Platform, device.Active, device.LastSyncAt)
	}
	return nil
}

func (c *Cli) printCachedDevices(ctx context.Context) error {
	devices, err := c.devices.ListDevices(ctx)
	if err != nil {
		return err
	}

	if len(devices) == 0 {
		c.io.Println("No cached devices. Run 'habitsync devices' while online.")
		return nil
	}

	c.io.Println("=== Devices (cached) ===")
	for _, device := range devices {
		c.printDevice(device.DeviceID, device.Name, device.Platform, device.Active, device.LastSyncAt)
	}
	return nil
}

func (c *Cli) printDevice(id, name, platform string, active bool, lastSync time.Time) {
	marker := " "
	if id == c.deviceID {
		marker = "*"
	}
	state := "active"
	if !active {
		state = "inactive"
	}
	last := "never"
	if !lastSync.IsZero() {
		last = lastSync.Local().Format(time.RFC822)
	}
	c.io.Printf("%s %-20s %-8s %-8s last sync: %s\n", marker, name, platform, state, last)
}
