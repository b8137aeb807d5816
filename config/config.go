// Package config はREPLの設定をYAMLファイルと環境変数から読み込む。
//
// 優先順位は 環境変数 > 設定ファイル > デフォルト値。
package config

import (
	"errors"
	"go/token"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/Berison/gocounter/errs"
)

// DefaultPath は--configが指定されなかった場合に読む設定ファイル
const DefaultPath = ".gocounter.yaml"

// Config はREPLの設定を表す
type Config struct {
	Prefix      string   `yaml:"prefix" env:"GOCOUNTER_PREFIX"`
	Title       string   `yaml:"title" env:"GOCOUNTER_TITLE"`
	LogDir      string   `yaml:"log_dir" env:"GOCOUNTER_LOG_DIR"`
	Debug       bool     `yaml:"debug" env:"GOCOUNTER_DEBUG"`
	CheckLatest bool     `yaml:"check_latest" env:"GOCOUNTER_CHECK_LATEST"`
	Counters    []string `yaml:"counters" env:"GOCOUNTER_COUNTERS" envSeparator:","`
}

// Default はデフォルト値の設定を返す
func Default() *Config {
	logDir := filepath.Join(os.TempDir(), "gocounter", "logs")
	if configDir, err := os.UserConfigDir(); err == nil {
		logDir = filepath.Join(configDir, "gocounter", "logs")
	}
	return &Config{
		Prefix: "gocounter> ",
		Title:  "gocounter",
		LogDir: logDir,
	}
}

// Load はpathの設定ファイルと環境変数から設定を読み込む
// ファイルが存在しない場合はデフォルト値と環境変数だけを使う
func Load(path string) (*Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, errs.NewBadInputError("failed to parse config file " + path).Wrap(err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, errs.NewInternalError("failed to read config file " + path).Wrap(err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, errs.NewBadInputError("failed to parse environment").Wrap(err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	seen := make(map[string]struct{}, len(c.Counters))
	for _, name := range c.Counters {
		switch {
		case !token.IsIdentifier(name) || name == "_":
			return errs.NewBadInputError("invalid counter name: " + name)
		case name == "counter":
			return errs.NewBadInputError("counter name shadows package: " + name)
		}
		if _, dup := seen[name]; dup {
			return errs.NewBadInputError("duplicate counter name: " + name)
		}
		seen[name] = struct{}{}
	}
	return nil
}
