package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFileMissingUsesDefaults(t *testing.T) {
	config, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfigFile() error = %v", err)
	}
	if config.Store.Engine != "json" || config.Server.Addr != ":3000" {
		t.Fatalf("config = %+v, want defaults", config)
	}
	home, _ := os.UserHomeDir()
	if home != "" && config.DataDir != filepath.Join(home, ".config", "dayspark", "data") {
		t.Fatalf("DataDir = %q, want ~ expanded", config.DataDir)
	}
}

func TestSaveAndLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dayspark", "config.yaml")
	t.Setenv("DAYSPARK_CONFIG", path)

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	config.Store.Engine = "sqlite"
	config.Backup.Enable = true
	config.Backup.Time = "06:15"
	if err := SaveConfig(*config); err != nil {
		t.Fatalf("SaveConfig() error = %v", err)
	}

	loaded, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile() error = %v", err)
	}
	if loaded.Store.Engine != "sqlite" || !loaded.Backup.Enable || loaded.Backup.Time != "06:15" {
		t.Fatalf("loaded = %+v", loaded)
	}
}

func TestLoadConfigFileRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("store: [unclosed"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := LoadConfigFile(path); err == nil {
		t.Fatalf("LoadConfigFile() error = nil, want parse error")
	}
}
