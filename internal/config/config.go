package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Транспорты, с которыми запускается бот. От выбранного зависит,
// какой токен обязателен при валидации.
const (
	TransportTelegram = "telegram"
	TransportMax      = "max"
)

type Config struct {
	App        AppConfig        `yaml:"app"`
	Telegram   TelegramConfig   `yaml:"telegram"`
	Max        MaxConfig        `yaml:"max"`
	Redis      RedisConfig      `yaml:"redis"`
	Database   DatabaseConfig   `yaml:"database"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	Logging    LoggingConfig    `yaml:"logging"`
	Admins     []int64          `yaml:"admins"`
}

type AppConfig struct {
	Name        string `yaml:"name"`
	Environment string `yaml:"environment"`
	Version     string `yaml:"version"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token"`
	Debug    bool   `yaml:"debug"`
}

type MaxConfig struct {
	BotToken    string `yaml:"bot_token"`
	BaseURL     string `yaml:"base_url"`
	PollTimeout int    `yaml:"poll_timeout"`
	PollLimit   int    `yaml:"poll_limit"`
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	PoolSize int    `yaml:"pool_size"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type MonitoringConfig struct {
	PrometheusEnabled bool `yaml:"prometheus_enabled"`
	PrometheusPort    int  `yaml:"prometheus_port"`
}

type LoggingConfig struct {
	Level    string `yaml:"level"`
	Format   string `yaml:"format"`
	Output   string `yaml:"output"`
	FilePath string `yaml:"file_path"`
}

// Load читает YAML-конфиг, подставляя переменные окружения.
// transport определяет, какой токен обязателен.
func Load(configPath, transport string) (*Config, error) {
	// .env опционален, секреты могут приходить из окружения напрямую
	_ = godotenv.Load(".env")

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	// Предварительная замена переменных окружения в YAML
	expandedData := []byte(os.ExpandEnv(string(data)))

	var config Config
	if err := yaml.Unmarshal(expandedData, &config); err != nil {
		return nil, err
	}

	config.applyDefaults()

	if err := config.Validate(transport); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func (c *Config) Validate(transport string) error {
	switch transport {
	case TransportTelegram:
		if c.Telegram.BotToken == "" || c.Telegram.BotToken == "YOUR_BOT_TOKEN_HERE" {
			return errors.New("telegram bot token is required")
		}
	case TransportMax:
		if c.Max.BotToken == "" {
			return errors.New("max bot token is required")
		}
		if c.Max.BaseURL == "" {
			return errors.New("max base url is required")
		}
	default:
		return fmt.Errorf("unknown transport: %s", transport)
	}

	if c.Database.Path == "" {
		return errors.New("database path is required")
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.Max.BaseURL == "" {
		c.Max.BaseURL = "https://platform-api.max.ru"
	}
	if c.Max.PollTimeout == 0 {
		c.Max.PollTimeout = 30
	}
	if c.Max.PollLimit == 0 {
		c.Max.PollLimit = 100
	}
	if c.Database.Path == "" {
		c.Database.Path = "data/bot.db"
	}
	if c.Monitoring.PrometheusEnabled && c.Monitoring.PrometheusPort == 0 {
		c.Monitoring.PrometheusPort = 9090
	}
}
