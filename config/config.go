package config

import (
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	LogLevel              string
	LogFormat             string
	MinProcesses          int
	MaxProcesses          int
	LowerIsHigherPriority bool
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads ./config.yaml once and exits the process if it is
// malformed. A missing file yields the defaults.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		cfg, err := Load("")
		if err != nil {
			log.Fatalln(err)
		}
		config = cfg
	})

	return config
}

// Load reads the config at path, or searches ./config.yaml when path is
// empty. SCHED_* environment variables override file values.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetDefault("port", 9095)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("scheduler.min_processes", 2)
	v.SetDefault("scheduler.max_processes", 9)
	v.SetDefault("scheduler.priority.lower_is_higher", true)

	v.SetEnvPrefix("sched")
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
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		LogLevel:              v.GetString("log.level"),
		LogFormat:             v.GetString("log.format"),
		MinProcesses:          v.GetInt("scheduler.min_processes"),
		MaxProcesses:          v.GetInt("scheduler.max_processes"),
		LowerIsHigherPriority: v.GetBool("scheduler.priority.lower_is_higher"),
	}

	// sanity clamps
	if cfg.Port <= 0 {
		cfg.Port = 9095
	}
	if cfg.MinProcesses < 0 {
		cfg.MinProcesses = 0
	}
	if cfg.MaxProcesses < 0 {
		cfg.MaxProcesses = 0
	}
	return cfg, nil
}
