package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cognilaw/lexon/pkg/lexon/internalerr"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Server.Addr != ":8000" {
		t.Errorf("Addr = %q, want %q", c.Server.Addr, ":8000")
	}
	if c.MaxUploadMB != 50 {
		t.Errorf("MaxUploadMB = %d, want 50", c.MaxUploadMB)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexon.yaml")
	data := "server:\n  addr: \":9090\"\nmax_upload_mb: 10\nllm:\n  base_url: http://localhost:11434/v1/chat/completions\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Server.Addr != ":9090" {
		t.Errorf("Addr = %q, want %q", c.Server.Addr, ":9090")
	}
	if c.MaxUploadMB != 10 {
		t.Errorf("MaxUploadMB = %d, want 10", c.MaxUploadMB)
	}
	if c.LLM.Model != "llama3.2:3b" {
		t.Errorf("Unset keys should keep defaults, model = %q", c.LLM.Model)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("LEXON_ADDR", ":7070")
	t.Setenv("LEXON_S3_BUCKET", "contracts")

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Server.Addr != ":7070" {
		t.Errorf("Addr = %q, want env override", c.Server.Addr)
	}
	if c.S3.Bucket != "contracts" {
		t.Errorf("Bucket = %q, want env override", c.S3.Bucket)
	}
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexon.yaml")
	if err := os.WriteFile(path, []byte("max_upload_mb: -1\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err := Load(path)
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("Load error = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load should fail for a missing file")
	}
}
