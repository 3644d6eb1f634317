package ports

import "go.trai.ch/stylegen/internal/core/domain"

//go:generate go run go.uber.org/mock/mockgen -source=config.go -destination=mocks/mock_config.go -package=mocks

// SettingsLoader resolves the toolchain settings before flags are applied.
type SettingsLoader interface {
	// Load returns the configured settings.
	Load() (domain.Settings, error)
}
