package config

import (
	"errors"
	"fmt"
	"os"

	"poloniex-api/pkg/domain"
	"poloniex-api/pkg/domain/model"
	"poloniex-api/pkg/infrastructure/memory"
	"poloniex-api/pkg/infrastructure/zaplog"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvPrefix 環境変数のプレフィックス
	EnvPrefix = "POLONIEX"

	defaultEnvFile = ".env"
)

// Load 設定読み込み
// 優先順位: 環境変数 > .envファイル > tomlファイル > デフォルト値
func Load(path, envFile string) (*model.Config, error) {
	conf := model.Config{}

	if path != "" {
		if _, err := toml.DecodeFile(path, &conf); err != nil {
			return nil, fmt.Errorf("failed to decode config file, path: %s; error: %w", path, err)
		}
	}

	if envFile == "" {
		envFile = defaultEnvFile
	}
	// 既存の環境変数は上書きされない
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file, path: %s; error: %w", envFile, err)
	}

	if err := envconfig.Process(EnvPrefix, &conf); err != nil {
		return nil, err
	}

	setDefaults(&conf)
	return &conf, nil
}

func setDefaults(conf *model.Config) {
	if conf.Exchange.PublicURL == "" {
		conf.Exchange.PublicURL = model.DefaultPublicURL
	}
	if conf.Exchange.PrivateURL == "" {
		conf.Exchange.PrivateURL = model.DefaultPrivateURL
	}
	if conf.Log.Level == "" {
		conf.Log.Level = "info"
	}
	if conf.Log.Format == "" {
		conf.Log.Format = "text"
	}
	if conf.Fetcher.Depth == "" {
		conf.Fetcher.Depth = model.DefaultDepth
	}
	if conf.Fetcher.Period == "" {
		conf.Fetcher.Period = "300"
	}
	if conf.Fetcher.ChartHours == 0 {
		conf.Fetcher.ChartHours = 24
	}
	if conf.Fetcher.IntervalSeconds == 0 {
		conf.Fetcher.IntervalSeconds = 60
	}
}

// ValidateCredentials APIキーが設定されているか
func ValidateCredentials(conf *model.Config) error {
	if conf.Exchange.APIKey == "" {
		return fmt.Errorf("api key is not set; set exchange.api_key or %s_EXCHANGE_API_KEY", EnvPrefix)
	}
	if conf.Exchange.SecretKey == "" {
		return fmt.Errorf("secret key is not set; set exchange.secret_key or %s_EXCHANGE_SECRET_KEY", EnvPrefix)
	}
	return nil
}

// NewLogger ログ設定からロガーを生成
func NewLogger(conf *model.Log) (domain.Logger, error) {
	switch conf.Format {
	case "", "text":
		level, err := memory.ParseLevel(conf.Level)
		if err != nil {
			return nil, err
		}
		return &memory.Logger{Level: level}, nil
	case "json":
		l, err := zaplog.NewLogger(conf.Level)
		if err != nil {
			return nil, err
		}
		return l, nil
	}
	return nil, fmt.Errorf("unknown log format: %s", conf.Format)
}
