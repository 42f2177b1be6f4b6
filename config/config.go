package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"rr-simulator/internal/core"
)

const EnvPrefix = "RRSIM"

type SchedulerConfig struct {
	Port                  int
	LogLevel              string
	LogFormat             string
	RoundRobinTimeQuantum int
	MaxSlices             int
	StoragePath           string
	SessionTTL            time.Duration
	MaxSessions           int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 9095)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("scheduler.max_slices", core.DefaultMaxSlices)
	v.SetDefault("storage.path", "rrsim.db")
	v.SetDefault("sessions.ttl", "30m")
	v.SetDefault("sessions.max", 1024)
}

// Load reads the configuration. With an empty path it looks for config.yaml
// in the working directory; a missing file there is not an error. Values can
// be overridden by RRSIM_* environment variables, e.g. RRSIM_PORT or
// RRSIM_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	config := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		LogLevel:              v.GetString("log.level"),
		LogFormat:             v.GetString("log.format"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		MaxSlices:             v.GetInt("scheduler.max_slices"),
		StoragePath:           v.GetString("storage.path"),
		SessionTTL:            v.GetDuration("sessions.ttl"),
		MaxSessions:           v.GetInt("sessions.max"),
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *SchedulerConfig) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.RoundRobinTimeQuantum < 1 {
		return fmt.Errorf("invalid scheduler.round_robin.time_quantum %d: must be positive", c.RoundRobinTimeQuantum)
	}
	if c.MaxSlices < 1 {
		return fmt.Errorf("invalid scheduler.max_slices %d: must be positive", c.MaxSlices)
	}
	if c.SessionTTL < 0 {
		return fmt.Errorf("invalid sessions.ttl %s", c.SessionTTL)
	}
	if c.MaxSessions < 0 {
		return fmt.Errorf("invalid sessions.max %d", c.MaxSessions)
	}
	return nil
}

func (c *SchedulerConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}
