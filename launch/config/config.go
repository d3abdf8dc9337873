package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spikeekips/nemaddress/address"
	"github.com/spikeekips/nemaddress/util/isvalid"
	"gopkg.in/yaml.v3"
)

const DefaultBatchLimit int64 = 100

type Config struct {
	Networks   address.NetworkIDs `yaml:"networks,omitempty"`
	BatchLimit int64              `yaml:"batch-limit,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		BatchLimit: DefaultBatchLimit,
	}
}

// Parse reads yaml config; missing fields keep the default values.
func Parse(b []byte) (Config, error) {
	conf := DefaultConfig()

	if err := yaml.Unmarshal(b, &conf); err != nil {
		return Config{}, errors.Wrap(err, "failed to parse config")
	}

	if err := isvalid.Check(nil, false, conf); err != nil {
		return Config{}, err
	}

	return conf, nil
}

func Load(f string) (Config, error) {
	b, err := os.ReadFile(filepath.Clean(f))
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read config")
	}

	return Parse(b)
}

func (conf Config) IsValid([]byte) error {
	return isvalid.CheckFunc(
		conf.checkBatchLimit,
	)
}

func (conf Config) checkBatchLimit() error {
	if conf.BatchLimit < 1 {
		return errors.Errorf("batch-limit should be over zero, %d", conf.BatchLimit)
	}

	return nil
}
