package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/fsdevblog/minivenmo/internal/domain"
)

const dotEnvFile = ".env"

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`
	CardOrder     string `env:"CARD_ORDER"`
}

// LoadConfig собирает конфиг из переменных окружения (включая необязательный .env файл) и флагов
// командной строки. Переменные окружения приоритетнее флагов.
func LoadConfig() (*Config, error) {
	return loadConfig(os.Args[1:])
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

// ParsedCardOrder возвращает порядок обхода кредитных карт при оплате.
func (c *Config) ParsedCardOrder() (domain.CardOrder, error) {
	order, err := domain.ParseCardOrder(c.CardOrder)
	if err != nil {
		return "", fmt.Errorf("card order: %w", err)
	}
	return order, nil
}

func loadConfig(args []string) (*Config, error) {
	if dotEnvErr := godotenv.Load(dotEnvFile); dotEnvErr != nil && !errors.Is(dotEnvErr, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %s", dotEnvFile, dotEnvErr.Error())
	}

	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	if flagsErr := loadFlags(&flagsConfig, args); flagsErr != nil {
		return nil, fmt.Errorf("parse flags: %s", flagsErr.Error())
	}

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if _, orderErr := conf.ParsedCardOrder(); orderErr != nil {
		return nil, orderErr
	}
	return conf, nil
}

func loadFlags(flagConfig *Config, args []string) error {
	flagSet := flag.NewFlagSet("minivenmo", flag.ContinueOnError)
	flagSet.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flagSet.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flagSet.StringVar(&flagConfig.MigrationsDir, "m", "", "Database migrations directory, embedded migrations if empty")
	flagSet.StringVar(&flagConfig.CardOrder, "c", string(domain.CardOrderIDAsc), "Credit card order: id_asc or id_desc")

	return flagSet.Parse(args) //nolint:wrapcheck
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		RunAddress:    defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:   defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir: defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		CardOrder:     defaultIfBlank(envConfig.CardOrder, flagsConfig.CardOrder),
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
