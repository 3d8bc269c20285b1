package config

import (
	"os"
	"path/filepath"
	"testing"
)

func validConfig() Config {
	return Config{
		HTTP:     HTTPConfig{Port: 8080},
		Database: DatabaseConfig{Addrs: []string{"localhost:6379"}},
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig()
	cfg.HTTP.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_MissingDatabaseAddrs(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Addrs = nil

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing database addrs")
	}
}

func TestValidate_TemperatureRange(t *testing.T) {
	cfg := validConfig()
	cfg.LLM.Temperature = 3.5

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for out-of-range temperature")
	}

	cfg.LLM.Temperature = 0.3
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 60 {
		t.Errorf("expected WriteTimeoutSec=60, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.LLM.BaseURL != "https://openrouter.ai/api/v1" {
		t.Errorf("unexpected llm base url: %q", cfg.LLM.BaseURL)
	}
	if cfg.LLM.Model != "mistralai/mistral-7b-instruct" {
		t.Errorf("unexpected llm model: %q", cfg.LLM.Model)
	}
	if cfg.LLM.Temperature != 0.3 {
		t.Errorf("expected Temperature=0.3, got %v", cfg.LLM.Temperature)
	}
	if cfg.LLM.MaxTokens != 500 {
		t.Errorf("expected MaxTokens=500, got %d", cfg.LLM.MaxTokens)
	}
	if cfg.LLM.TimeoutSec != 30 {
		t.Errorf("expected TimeoutSec=30, got %d", cfg.LLM.TimeoutSec)
	}
	if cfg.Retrieval.TopK != 5 {
		t.Errorf("expected TopK=5, got %d", cfg.Retrieval.TopK)
	}
	if cfg.Storage.KeyPrefix != "dinerag:" {
		t.Errorf("unexpected key prefix: %q", cfg.Storage.KeyPrefix)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("DINERAG_TEST_KEY", "secret")

	in := []byte("api_key: ${DINERAG_TEST_KEY}\nbase_url: ${DINERAG_TEST_URL:-https://fallback}\n")
	out := string(expandEnvVars(in))

	want := "api_key: secret\nbase_url: https://fallback\n"
	if out != want {
		t.Errorf("expandEnvVars:\ngot:  %q\nwant: %q", out, want)
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "config"), 0o755); err != nil {
		t.Fatal(err)
	}

	data := []byte("http:\n  port: 9090\ndatabase:\n  addrs:\n    - localhost:6379\nllm:\n  api_key: ${DINERAG_TEST_LOAD_KEY}\n")
	if err := os.WriteFile(filepath.Join(dir, "config", "test.yaml"), data, 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("DINERAG_TEST_LOAD_KEY", "from-env")
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	cfg, err := Load("test")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.HTTP.Port)
	}
	if cfg.LLM.APIKey != "from-env" {
		t.Errorf("expected api key from env, got %q", cfg.LLM.APIKey)
	}
	if cfg.LLM.Model == "" {
		t.Error("expected default model to be applied")
	}
}
