package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
		Verbose bool   `json:"verbose"`
	} `json:"app,omitempty"`

	Backup struct {
		FilePath string `json:"file"`
		Email    string `json:"email"`
	} `json:"backup,omitempty"`

	Vault struct {
		Binary         string   `json:"binary"`
		CommandTimeout Duration `json:"command_timeout"`
	} `json:"vault,omitempty"`

	Storage struct {
		CatalogPath string `json:"catalog_path"`
	} `json:"storage,omitempty"`

	Restore struct {
		CopyToClipboard bool `json:"copy"`
	} `json:"restore,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
			Verbose: jsonCfg.App.Verbose,
		},
		Backup: Backup{
			FilePath: jsonCfg.Backup.FilePath,
			Email:    jsonCfg.Backup.Email,
		},
		Vault: Vault{
			Binary:         jsonCfg.Vault.Binary,
			CommandTimeout: time.Duration(jsonCfg.Vault.CommandTimeout),
		},
		Storage: Storage{
			CatalogPath: jsonCfg.Storage.CatalogPath,
		},
		Restore: Restore{
			CopyToClipboard: jsonCfg.Restore.CopyToClipboard,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
