package server

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/iov-one/bazaar/errors"
	"github.com/tendermint/tendermint/libs/log"
)

// Config holds the daemon settings read from a TOML file. Command line flags
// take precedence over values from the file.
type Config struct {
	LogLevel string      `toml:"log_level"`
	Start    StartConfig `toml:"start"`
	Kafka    KafkaConfig `toml:"kafka"`
}

type StartConfig struct {
	Bind  string `toml:"bind"`
	Debug bool   `toml:"debug"`
}

// KafkaConfig enables event publishing when at least one broker is set.
type KafkaConfig struct {
	Brokers []string `toml:"brokers"`
	Topic   string   `toml:"topic"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Start: StartConfig{
			Bind: "tcp://localhost:26658",
		},
		Kafka: KafkaConfig{
			Topic: "bazaar-events",
		},
	}
}

// LoadConfig overlays the TOML file at path on top of the default
// configuration. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	conf := DefaultConfig()
	if path == "" {
		return conf, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return conf, nil
	}
	md, err := toml.DecodeFile(path, &conf)
	if err != nil {
		return conf, errors.Wrapf(errors.ErrInput, "cannot decode %s: %s", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		return conf, errors.Wrapf(errors.ErrInput, "unknown configuration key %q", undecoded[0].String())
	}
	return conf, nil
}

// FilterLogger limits the logger output to the given level.
func FilterLogger(logger log.Logger, level string) (log.Logger, error) {
	opt, err := log.AllowLevel(level)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return log.NewFilter(logger, opt), nil
}
