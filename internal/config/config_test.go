package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}

	if cfg.Storage.BookFile != "addressbook.json" {
		t.Errorf("Storage.BookFile = %q, want addressbook.json", cfg.Storage.BookFile)
	}
	if cfg.Greetings.WindowDays != 7 {
		t.Errorf("Greetings.WindowDays = %d, want 7", cfg.Greetings.WindowDays)
	}
	if cfg.Daemon.DailyTime != "09:00" {
		t.Errorf("Daemon.DailyTime = %q, want 09:00", cfg.Daemon.DailyTime)
	}
	if cfg.Daemon.LogLevel != "info" {
		t.Errorf("Daemon.LogLevel = %q, want info", cfg.Daemon.LogLevel)
	}
}

func TestLoadExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
storage:
  book_file: /tmp/contacts.json
greetings:
  window_days: 14
daemon:
  daily_time: "20:30"
  system_tray: true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Storage.BookFile != "/tmp/contacts.json" {
		t.Errorf("Storage.BookFile = %q, want /tmp/contacts.json", cfg.Storage.BookFile)
	}
	if cfg.Greetings.WindowDays != 14 {
		t.Errorf("Greetings.WindowDays = %d, want 14", cfg.Greetings.WindowDays)
	}
	if !cfg.Daemon.SystemTray {
		t.Error("Daemon.SystemTray = false, want true")
	}

	hour, minute := cfg.Daemon.GetDailyTime()
	if hour != 20 || minute != 30 {
		t.Errorf("GetDailyTime() = (%d, %d), want (20, 30)", hour, minute)
	}
}

func TestLoadExplicitFileMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() of missing explicit file expected error, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"Valid defaults", func(c *Config) {}, false},
		{"Empty book file", func(c *Config) { c.Storage.BookFile = "" }, true},
		{"Negative window", func(c *Config) { c.Greetings.WindowDays = -1 }, true},
		{"Zero window is allowed", func(c *Config) { c.Greetings.WindowDays = 0 }, false},
		{"Bad daily time", func(c *Config) { c.Daemon.DailyTime = "25:99" }, true},
		{"Not a time at all", func(c *Config) { c.Daemon.DailyTime = "soon" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Storage:   StorageConfig{BookFile: "addressbook.json"},
				Greetings: GreetingsConfig{WindowDays: 7},
				Daemon:    DaemonConfig{DailyTime: "09:00"},
			}
			tt.mutate(cfg)

			err := cfg.Validate()

			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetDailyTime(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantHour   int
		wantMinute int
	}{
		{"Configured time", "20:30", 20, 30},
		{"Empty falls back to default", "", 9, 0},
		{"Invalid falls back to default", "banana", 9, 0},
		{"Out of range falls back to default", "24:00", 9, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DaemonConfig{DailyTime: tt.input}

			hour, minute := c.GetDailyTime()

			if hour != tt.wantHour || minute != tt.wantMinute {
				t.Errorf("GetDailyTime() = (%d, %d), want (%d, %d)",
					hour, minute, tt.wantHour, tt.wantMinute)
			}
		})
	}
}
