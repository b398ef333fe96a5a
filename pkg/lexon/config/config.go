package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognilaw/lexon/pkg/lexon/internalerr"
)

// Config holds the application configuration for the analyzer service.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`

	// MaxUploadMB caps accepted document size, matching the extraction
	// layer's limit.
	MaxUploadMB int `yaml:"max_upload_mb"`

	// DBPath is the SQLite database file; empty selects the in-memory
	// store.
	DBPath string `yaml:"db_path"`

	LLM struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
		Model   string `yaml:"model"`
	} `yaml:"llm"`

	S3 struct {
		Bucket string `yaml:"bucket"`
		Region string `yaml:"region"`
		Prefix string `yaml:"prefix"`
	} `yaml:"s3"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	var c Config
	c.Server.Addr = ":8000"
	c.MaxUploadMB = 50
	c.LLM.Model = "llama3.2:3b"
	c.S3.Region = "us-east-1"
	c.S3.Prefix = "legal-documents"
	return c
}

// Load reads a YAML configuration file over the defaults and applies
// environment overrides. An empty path loads defaults plus environment
// only.
func Load(path string) (Config, error) {
	c := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &c); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	c.applyEnv()

	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// applyEnv lets the usual deployment knobs override the file. Cloud
// credentials are not handled here; the AWS SDK reads its own
// environment.
func (c *Config) applyEnv() {
	if v := os.Getenv("LEXON_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("LEXON_DB_PATH"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("LEXON_LLM_BASE_URL"); v != "" {
		c.LLM.BaseURL = v
	}
	if v := os.Getenv("LEXON_LLM_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("LEXON_LLM_MODEL"); v != "" {
		c.LLM.Model = v
	}
	if v := os.Getenv("LEXON_S3_BUCKET"); v != "" {
		c.S3.Bucket = v
	}
	if v := os.Getenv("LEXON_S3_REGION"); v != "" {
		c.S3.Region = v
	}
}

func (c *Config) validate() error {
	if c.MaxUploadMB <= 0 {
		return fmt.Errorf("%w: max_upload_mb must be positive", internalerr.ErrInvalidConfig)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("%w: server.addr is required", internalerr.ErrInvalidConfig)
	}
	return nil
}
