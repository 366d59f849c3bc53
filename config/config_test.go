package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfig(t, "http:\n  addr: \":8080\"\n")
	t.Setenv("CONFIG_PATH", path)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Fatalf("addr: %q", cfg.HTTP.Addr)
	}
	if cfg.Storage.RoomsPath != "./input/rooms.json" || cfg.Storage.StudentsPath != "./input/students.json" {
		t.Fatalf("storage defaults not applied: %+v", cfg.Storage)
	}
	if cfg.Logging.Service != "registry-service" || cfg.Logging.Env != "dev" || cfg.Logging.Backend != "std" {
		t.Fatalf("logging defaults not applied: %+v", cfg.Logging)
	}
}

func TestLoadConfig_RequiresAddr(t *testing.T) {
	path := writeConfig(t, "logging:\n  env: prod\n")
	t.Setenv("CONFIG_PATH", path)

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected an error for missing http.addr")
	}
}

func TestLoadConfig_FullFile(t *testing.T) {
	path := writeConfig(t, `
http:
  addr: ":9090"
logging:
  env: prod
  backend: zap
storage:
  roomsPath: /data/rooms.json
  studentsPath: /data/students.json
`)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Logging.Env != "prod" || cfg.Logging.Backend != "zap" {
		t.Fatalf("logging not parsed: %+v", cfg.Logging)
	}
	if cfg.Storage.RoomsPath != "/data/rooms.json" {
		t.Fatalf("storage not parsed: %+v", cfg.Storage)
	}
}
