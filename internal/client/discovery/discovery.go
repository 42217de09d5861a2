// Package discovery находит доступный sync-сервер в локальной сети.
// Отсутствие сервера — нормальное состояние offline-first системы:
// Discover сообщает "не найден", не ошибку, и каждый сетевой вызов
// ограничен таймаутом.
package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/iudanet/habitsync/internal/client/storage"
)

const (
	// DefaultProbeTimeout таймаут одного liveness probe
	DefaultProbeTimeout = 2 * time.Second

	// DefaultScanTimeout общий лимит на весь Discover
	DefaultScanTimeout = 10 * time.Second

	// DefaultPort порт sync-сервера по умолчанию
	DefaultPort = 8080

	// probeWorkers количество параллельных проберов при сканировании
	probeWorkers = 16
)

// Config настройки discovery
type Config struct {
	// StaticAddrs настроенные вручную адреса-кандидаты (base URL)
	StaticAddrs []string

	// Port порт, на котором сканируется локальная подсеть
	Port int

	// ProbeTimeout таймаут одного probe
	ProbeTimeout time.Duration

	// ScanTimeout общий лимит Discover
	ScanTimeout time.Duration

	// DisableSubnetScan отключает перебор локальной /24 подсети
	// (используется в тестах)
	DisableSubnetScan bool
}

// withDefaults заполняет незаданные поля
func (c Config) withDefaults() Config {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.ProbeTimeout == 0 {
		c.ProbeTimeout = DefaultProbeTimeout
	}
	if c.ScanTimeout == 0 {
		c.ScanTimeout = DefaultScanTimeout
	}
	return c
}

// Service реализует поиск сервера по фиксированному набору кандидатов:
// последний рабочий адрес, статические адреса, локальная /24 подсеть.
type Service struct {
	metadata   storage.MetadataStorage
	httpClient *http.Client
	logger     *slog.Logger
	cfg        Config
}

// New creates a new discovery service
func New(cfg Config, metadata storage.MetadataStorage, logger *slog.Logger) *Service {
	cfg = cfg.withDefaults()
	return &Service{
		cfg:      cfg,
		metadata: metadata,
		logger:   logger,
		httpClient: &http.Client{
			Timeout: cfg.ProbeTimeout,
		},
	}
}

// Discover пробует кандидатов и возвращает первый отвечающий адрес.
// ok=false означает offline — ожидаемое состояние, не ошибка.
func (s *Service) Discover(ctx context.Context) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.ScanTimeout)
	defer cancel()

	candidates := s.ScanCandidates(ctx)
	found := make(chan string, 1)

	// Пул проберов: кандидаты пробуются параллельно, первый успех
	// отменяет остальных
	var wg sync.WaitGroup
	for i := 0; i < probeWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for addr := range candidates {
				if s.TestConnection(ctx, addr) {
					select {
					case found <- addr:
						cancel()
					default:
					}
					return
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(found)
	}()

	addr, ok := <-found
	if !ok {
		s.logger.Info("no sync server found, staying offline")
		return "", false
	}

	s.logger.Info("sync server discovered", "addr", addr)

	// Запоминаем рабочий адрес: при следующем discovery он пробуется первым
	if err := s.metadata.SaveLastServerAddr(context.WithoutCancel(ctx), addr); err != nil {
		s.logger.Warn("failed to save last server addr", "error", err)
	}

	return addr, true
}

// TestConnection выполняет один ограниченный по времени probe.
// Никогда не возвращает ошибку — сетевые сбои дают false.
func (s *Service) TestConnection(ctx context.Context, addr string) bool {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.ProbeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr+"/api/v1/health", nil)
	if err != nil {
		return false
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return false
	}

	var health struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return false
	}

	return health.Status == "ok"
}

// ScanCandidates лениво перечисляет кандидатов в порядке приоритета.
// Канал закрывается после исчерпания; отмена контекста прерывает
// генерацию, так что вызывающий может остановить скан в любой момент.
func (s *Service) ScanCandidates(ctx context.Context) <-chan string {
	out := make(chan string)

	go func() {
		defer close(out)

		seen := make(map[string]struct{})
		emit := func(addr string) bool {
			if addr == "" {
				return true
			}
			if _, ok := seen[addr]; ok {
				return true
			}
			seen[addr] = struct{}{}

			select {
			case out <- addr:
				return true
			case <-ctx.Done():
				return false
			}
		}

		// 1. Последний рабочий адрес
		if lastAddr, err := s.metadata.GetLastServerAddr(ctx); err == nil {
			if !emit(lastAddr) {
				return
			}
		}

		// 2. Статические адреса из конфигурации
		for _, addr := range s.cfg.StaticAddrs {
			if !emit(addr) {
				return
			}
		}

		// 3. Локальная /24 подсеть каждого интерфейса
		if s.cfg.DisableSubnetScan {
			return
		}
		for _, ip := range localSubnetHosts() {
			addr := fmt.Sprintf("http://%s:%d", ip, s.cfg.Port)
			if !emit(addr) {
				return
			}
		}
	}()

	return out
}

// localSubnetHosts перечисляет хосты /24 подсетей локальных IPv4 интерфейсов
func localSubnetHosts() []string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return nil
	}

	var hosts []string
	for _, addr := range addrs {
		ipNet, ok := addr.(*net.IPNet)
		if !ok || ipNet.IP.IsLoopback() {
			continue
		}

		ip4 := ipNet.IP.To4()
		if ip4 == nil {
			continue
		}

		// Перебираем .1-.254 внутри /24 подсети интерфейса
		for host := 1; host <= 254; host++ {
			candidate := net.IPv4(ip4[0], ip4[1], ip4[2], byte(host))
			if candidate.Equal(ip4) {
				continue
			}
			hosts = append(hosts, candidate.String())
		}
	}

	return hosts
}
