package config

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	Preferences PreferencesConfig `mapstructure:"preferences"`
	Seed        SeedConfig        `mapstructure:"seed"`
	Worker      WorkerConfig      `mapstructure:"worker"`
}

type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	Host            string        `mapstructure:"host"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	RateLimit       int           `mapstructure:"rate_limit"` // запросов в минуту с одного IP
	CORSOrigins     []string      `mapstructure:"cors_origins"`
	Tracing         bool          `mapstructure:"tracing"`
}

type LoggingConfig struct {
	Development bool `mapstructure:"development"`
}

// пустой path: настройки живут только в памяти
type PreferencesConfig struct {
	Path            string `mapstructure:"path"`
	DefaultDarkMode bool   `mapstructure:"default_dark_mode"`
}

type SeedConfig struct {
	Demo bool `mapstructure:"demo"`
}

type WorkerConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	AgendaInterval time.Duration `mapstructure:"agenda_interval"`
}

const EnvPrefix = "TASKBOARD"

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.request_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.rate_limit", 100)
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("server.tracing", false)

	v.SetDefault("logging.development", false)

	v.SetDefault("preferences.path", "")
	v.SetDefault("preferences.default_dark_mode", false)

	v.SetDefault("seed.demo", false)

	v.SetDefault("worker.enabled", true)
	v.SetDefault("worker.agenda_interval", 5*time.Minute)
}

// Load читает config.yml (или файл по path), поверх идут переменные TASKBOARD_*.
// Отсутствие файла не ошибка: остаются значения по умолчанию.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("чтение конфигурации: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("ошибка разбора конфигурации: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("server.port не задан")
	}
	if c.Server.RateLimit < 0 {
		return errors.New("server.rate_limit не может быть отрицательным")
	}
	if c.Worker.Enabled && c.Worker.AgendaInterval <= 0 {
		return errors.New("worker.agenda_interval должен быть больше нуля")
	}
	return nil
}

func (c *Config) GetServerAddr() string {
	return net.JoinHostPort(c.Server.Host, c.Server.Port)
}
