package sources

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Config is the connector configuration supplied by the caller.
//
// NamesConversion is a pointer so that an absent field can default to true.
type Config struct {
	SpreadsheetID   string `json:"spreadsheet_id"`
	CredentialsJSON string `json:"credentials_json"`
	NamesConversion *bool  `json:"names_conversion,omitempty"`
}

// LoadConfig reads and validates a JSON configuration file.
func LoadConfig(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("unable to read configuration file (%v)", err)
	}

	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration file (%v)", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the required fields.
func (c Config) Validate() error {
	if strings.TrimSpace(c.SpreadsheetID) == "" {
		return fmt.Errorf("spreadsheet_id is a required configuration field")
	}

	if strings.TrimSpace(c.CredentialsJSON) == "" {
		return fmt.Errorf("credentials_json is a required configuration field")
	}

	return nil
}

// ConvertNames reports whether header and stream names should be normalized.
// Defaults to true when the field is absent.
func (c Config) ConvertNames() bool {
	if c.NamesConversion == nil {
		return true
	}

	return *c.NamesConversion
}
