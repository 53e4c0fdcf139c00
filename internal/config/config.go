package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	// DatadirKey is the local data directory to store the internal state
	DatadirKey = "DATADIR"
	// LogLevelKey are the different logging levels. For reference on the values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
	// DbTypeKey is the storage backend to use. Either "badger" or "inmemory"
	DbTypeKey = "DB_TYPE"
	// StatsIntervalKey defines interval in seconds for printing basic runtime statistics
	StatsIntervalKey = "STATS_INTERVAL"
	// EnableProfilerKey enables the memory statistics routine
	EnableProfilerKey = "ENABLE_PROFILER"

	DbLocation = "db"
)

var vip *viper.Viper

func init() {
	vip = viper.New()
	vip.SetEnvPrefix("POOLSWAP")
	vip.AutomaticEnv()

	vip.SetDefault(DatadirKey, defaultDatadir())
	vip.SetDefault(LogLevelKey, 4)
	vip.SetDefault(DbTypeKey, "badger")
	vip.SetDefault(StatsIntervalKey, 600)
	vip.SetDefault(EnableProfilerKey, false)

	if err := validate(); err != nil {
		log.WithError(err).Panic("error while validating config")
	}
}

// GetString ...
func GetString(key string) string {
	return vip.GetString(key)
}

// GetInt ...
func GetInt(key string) int {
	return vip.GetInt(key)
}

// GetBool ...
func GetBool(key string) bool {
	return vip.GetBool(key)
}

// GetDuration ...
func GetDuration(key string) time.Duration {
	return vip.GetDuration(key)
}

// Set a value for the given key
func Set(key string, value interface{}) {
	vip.Set(key, value)
}

// GetDatadir returns the data directory, creating it if missing.
func GetDatadir() (string, error) {
	datadir := GetString(DatadirKey)
	if err := os.MkdirAll(filepath.Join(datadir, DbLocation), 0755); err != nil {
		return "", err
	}
	return datadir, nil
}

func validate() error {
	switch dbType := vip.GetString(DbTypeKey); dbType {
	case "badger", "inmemory":
	default:
		return fmt.Errorf("unsupported db type %s", dbType)
	}

	logLevel := vip.GetInt(LogLevelKey)
	if logLevel < 0 || logLevel > int(log.TraceLevel) {
		return fmt.Errorf("log level must be in range [%d, %d]", 0, int(log.TraceLevel))
	}
	return nil
}

func defaultDatadir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".poolswap"
	}
	return filepath.Join(home, ".poolswap")
}
