package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Cfg is process-level configuration, read from env-vars.
// Use #Load to create new instance.
type Cfg struct {
	// Path of file the ledger-snapshot is persisted to.
	// Relative paths resolve against working-directory.
	DataFilePath string `envconfig:"DATA_FILE" default:"bank_data.json"`
}

var defaultEnv = map[string]string{
	"LOG_LEVEL": "info",
}

func init() {
	for envVar, envVal := range defaultEnv {
		if os.Getenv(envVar) == "" {
			os.Setenv(envVar, envVal)
		}
	}
}

// Load reads configuration from env-vars,
// applying defaults for unset values.
func Load() (*Cfg, error) {
	cfg := &Cfg{}
	err := envconfig.Process("bank", cfg)
	if err != nil {
		return nil, errors.Wrap(err, "error processing env-config")
	}
	return cfg, nil
}
