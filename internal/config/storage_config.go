package config

// StorageConfig defines configuration for the shared rate-limit counter store
type StorageConfig struct {
	CounterDBPath string `json:"counter_db_path,omitempty" yaml:"counter_db_path,omitempty"`
}

// NewDefaultStorageConfig creates default storage configuration
func NewDefaultStorageConfig() StorageConfig {
	return StorageConfig{
		CounterDBPath: DefaultCounterDBPath,
	}
}
