package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
telegram:
  bot_token: "${TEST_BOT_TOKEN}"
max:
  bot_token: "max_token"
database:
  path: "test.db"
admins:
  - 100
  - 200
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	os.Setenv("TEST_BOT_TOKEN", "test_token")
	defer os.Unsetenv("TEST_BOT_TOKEN")

	cfg, err := Load(configPath, TransportTelegram)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Telegram.BotToken != "test_token" {
		t.Errorf("expected bot_token test_token, got %s", cfg.Telegram.BotToken)
	}
	if len(cfg.Admins) != 2 || cfg.Admins[0] != 100 {
		t.Errorf("expected admins [100 200], got %v", cfg.Admins)
	}
	if cfg.Max.BaseURL == "" {
		t.Error("expected default max base_url to be applied")
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		transport string
		wantErr   bool
	}{
		{
			name: "valid telegram config",
			cfg: Config{
				Telegram: TelegramConfig{BotToken: "token"},
				Database: DatabaseConfig{Path: "path"},
			},
			transport: TransportTelegram,
			wantErr:   false,
		},
		{
			name: "missing telegram token",
			cfg: Config{
				Database: DatabaseConfig{Path: "path"},
			},
			transport: TransportTelegram,
			wantErr:   true,
		},
		{
			name: "placeholder telegram token",
			cfg: Config{
				Telegram: TelegramConfig{BotToken: "YOUR_BOT_TOKEN_HERE"},
				Database: DatabaseConfig{Path: "path"},
			},
			transport: TransportTelegram,
			wantErr:   true,
		},
		{
			name: "valid max config",
			cfg: Config{
				Max:      MaxConfig{BotToken: "token", BaseURL: "https://example.org"},
				Database: DatabaseConfig{Path: "path"},
			},
			transport: TransportMax,
			wantErr:   false,
		},
		{
			name: "missing max token",
			cfg: Config{
				Max:      MaxConfig{BaseURL: "https://example.org"},
				Database: DatabaseConfig{Path: "path"},
			},
			transport: TransportMax,
			wantErr:   true,
		},
		{
			name: "unknown transport",
			cfg: Config{
				Telegram: TelegramConfig{BotToken: "token"},
				Database: DatabaseConfig{Path: "path"},
			},
			transport: "carrier_pigeon",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate(tt.transport)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.Max.BaseURL != "https://platform-api.max.ru" {
		t.Errorf("expected default max base_url, got %s", cfg.Max.BaseURL)
	}
	if cfg.Max.PollTimeout != 30 {
		t.Errorf("expected default poll_timeout 30, got %d", cfg.Max.PollTimeout)
	}
	if cfg.Database.Path != "data/bot.db" {
		t.Errorf("expected default database path, got %s", cfg.Database.Path)
	}

	cfg = &Config{Monitoring: MonitoringConfig{PrometheusEnabled: true}}
	cfg.applyDefaults()
	if cfg.Monitoring.PrometheusPort != 9090 {
		t.Errorf("expected default prometheus port 9090, got %d", cfg.Monitoring.PrometheusPort)
	}
}
