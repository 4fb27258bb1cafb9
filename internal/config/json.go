package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		PasswordHashKey    string   `json:"password_hash_key"`
		SessionSignKey     string   `json:"session_sign_key"`
		SessionIssuer      string   `json:"session_issuer"`
		SessionDuration    Duration `json:"session_duration"`
		AllowedEmailDomain string   `json:"allowed_email_domain"`
		SecureCookies      bool     `json:"secure_cookies"`
		Version            string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Client struct {
		BaseURL         string   `json:"base_url"`
		RequestTimeout  Duration `json:"request_timeout"`
		CacheDSN        string   `json:"cache_dsn"`
		RefreshInterval Duration `json:"refresh_interval"`
	} `json:"client,omitempty"`
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
			PasswordHashKey:    jsonCfg.App.PasswordHashKey,
			SessionSignKey:     jsonCfg.App.SessionSignKey,
			SessionIssuer:      jsonCfg.App.SessionIssuer,
			SessionDuration:    time.Duration(jsonCfg.App.SessionDuration),
			AllowedEmailDomain: jsonCfg.App.AllowedEmailDomain,
			SecureCookies:      jsonCfg.App.SecureCookies,
			Version:            jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Client: Client{
			BaseURL:         jsonCfg.Client.BaseURL,
			RequestTimeout:  time.Duration(jsonCfg.Client.RequestTimeout),
			CacheDSN:        jsonCfg.Client.CacheDSN,
			RefreshInterval: time.Duration(jsonCfg.Client.RefreshInterval),
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
