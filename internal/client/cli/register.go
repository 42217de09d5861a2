package cli

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/iudanet/habitsync/internal/validation"
	"github.com/iudanet/habitsync/pkg/api"
)

// runRegister регистрирует устройство на сервере и сохраняет токен
func (c *Cli) runRegister(ctx context.Context, args []string) error {
	c.io.Println("=== Device Registration ===")
	c.io.Println()

	name, err := c.deviceName(args)
	if err != nil {
		return err
	}
	if err := validation.ValidateDeviceName(name); err != nil {
		return fmt.Errorf("invalid device name: %w", err)
	}

	secret, err := c.pairingSecret()
	if err != nil {
		return err
	}
	if err := validation.ValidatePairingSecret(secret); err != nil {
		return fmt.Errorf("invalid pairing secret: %w", err)
	}

	resp, err := c.apiClient.Register(ctx, api.RegisterDeviceRequest{
		DeviceID: c.deviceID,
		Name:     name,
		Platform: runtime.GOOS,
		Secret:   secret,
	})
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	// Токен нужен всем последующим командам
	if err := c.metadata.SaveAccessToken(ctx, resp.AccessToken); err != nil {
		return fmt.Errorf("failed to save access token: %w", err)
	}
	c.apiClient.SetToken(resp.AccessToken)

	c.io.Println()
	c.io.Println("✓ Device registered successfully!")
	c.io.Println()
	c.io.Printf("Device ID: %s\n", resp.Device.DeviceID)
	c.io.Printf("Name:      %s\n", resp.Device.Name)
	c.io.Printf("Platform:  %s\n", resp.Device.Platform)
	c.io.Println()
	c.io.Println("Run 'habitsync sync' to synchronize with other devices.")

	return nil
}

// deviceName берет имя из аргументов или спрашивает интерактивно
func (c *Cli) deviceName(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	name, err := c.io.ReadInput("Device name: ")
	if err != nil {
		return "", fmt.Errorf("failed to read device name: %w", err)
	}
	return name, nil
}

// pairingSecret берет pairing secret из окружения или спрашивает
// без отображения на экране
func (c *Cli) pairingSecret() (string, error) {
	if envSecret := os.Getenv("HABITSYNC_PAIRING_SECRET"); envSecret != "" {
		return envSecret, nil
	}

	secret, err := c.io.ReadPassword("Pairing secret: ")
	if err != nil {
		return "", fmt.Errorf("failed to read pairing secret: %w", err)
	}
	return secret, nil
}
