package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of [StructuredConfig].
type StructuredJSONConfig struct {
	App struct {
		SecretKey     string   `json:"secret_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		Version       string   `json:"version"`
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

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		PollInterval   Duration `json:"poll_interval"`
		PollTimeout    Duration `json:"poll_timeout"`
		DebounceWindow Duration `json:"debounce_window"`
		LockPolicy     string   `json:"lock_policy"`
		SessionDir     string   `json:"session_dir"`
		JobTimeout     Duration `json:"job_timeout"`
	} `json:"workers,omitempty"`

	Git struct {
		AuthorName    string `json:"author_name"`
		AuthorEmail   string `json:"author_email"`
		CommitMessage string `json:"commit_message"`
		Branch        string `json:"branch"`
		LockDir       string `json:"lock_dir"`
	} `json:"git,omitempty"`

	Log struct {
		File string `json:"file"`
	} `json:"log,omitempty"`
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
			SecretKey:     jsonCfg.App.SecretKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			Version:       jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			PollInterval:   time.Duration(jsonCfg.Workers.PollInterval),
			PollTimeout:    time.Duration(jsonCfg.Workers.PollTimeout),
			DebounceWindow: time.Duration(jsonCfg.Workers.DebounceWindow),
			LockPolicy:     jsonCfg.Workers.LockPolicy,
			SessionDir:     jsonCfg.Workers.SessionDir,
			JobTimeout:     time.Duration(jsonCfg.Workers.JobTimeout),
		},
		Git: Git{
			AuthorName:    jsonCfg.Git.AuthorName,
			AuthorEmail:   jsonCfg.Git.AuthorEmail,
			CommitMessage: jsonCfg.Git.CommitMessage,
			Branch:        jsonCfg.Git.Branch,
			LockDir:       jsonCfg.Git.LockDir,
		},
		Log: Log{File: jsonCfg.Log.File},
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
