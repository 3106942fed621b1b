package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "STORAGE_BACKEND", "DB_PATH", "DATA_PATH", "CHECK_INTERVAL_MIN", "AUTO_REGENERATE", "TG_CHAT_ID"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("Expected default port 8080, got %s", cfg.Port)
	}
	if cfg.StorageBackend != "sqlite" {
		t.Errorf("Expected default backend sqlite, got %s", cfg.StorageBackend)
	}
	if cfg.DBPath != "kaio.db" {
		t.Errorf("Expected default db path kaio.db, got %s", cfg.DBPath)
	}
	if cfg.CheckIntervalMin != 15 {
		t.Errorf("Expected default check interval 15, got %d", cfg.CheckIntervalMin)
	}
	if cfg.AutoRegenerate {
		t.Error("Expected auto regenerate off by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_BACKEND", "file")
	t.Setenv("DATA_PATH", "/tmp/kaio")
	t.Setenv("CHECK_INTERVAL_MIN", "5")
	t.Setenv("AUTO_REGENERATE", "true")
	t.Setenv("TG_CHAT_ID", "12345")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Errorf("Expected port 9090, got %s", cfg.Port)
	}
	if cfg.StorageBackend != "file" {
		t.Errorf("Expected backend file, got %s", cfg.StorageBackend)
	}
	if cfg.CheckIntervalMin != 5 {
		t.Errorf("Expected check interval 5, got %d", cfg.CheckIntervalMin)
	}
	if !cfg.AutoRegenerate {
		t.Error("Expected auto regenerate on")
	}
	if cfg.TelegramChatID != 12345 {
		t.Errorf("Expected chat id 12345, got %d", cfg.TelegramChatID)
	}
}

func TestLoadBadInterval(t *testing.T) {
	t.Setenv("CHECK_INTERVAL_MIN", "not-a-number")
	cfg := Load()
	if cfg.CheckIntervalMin != 15 {
		t.Errorf("Expected fallback interval 15, got %d", cfg.CheckIntervalMin)
	}
}
