package config

import (
	"os"
	"strings"

	"github.com/betbot/gofact/internal/conformance"
	"github.com/betbot/gofact/internal/strategies"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// 环境变量（可放在 .env）
const (
	EnvLogLevel   = "FACTCALC_LOG_LEVEL"
	EnvLogFile    = "FACTCALC_LOG_FILE"
	EnvStrategies = "FACTCALC_STRATEGIES"
)

// Config factcalc 配置
// 字段使用 camelCase 的 yaml/json tag
type Config struct {
	LogLevel   string             `yaml:"logLevel" json:"logLevel"`
	LogFile    string             `yaml:"logFile" json:"logFile"`
	Strategies []string           `yaml:"strategies" json:"strategies"`
	ExtraCases []conformance.Case `yaml:"extraCases" json:"extraCases"`
}

// Default 默认配置
func Default() *Config {
	return &Config{
		LogLevel:   "warn",
		Strategies: append([]string(nil), strategies.DefaultOrder...),
	}
}

// LoadFromFile 从 YAML 文件加载配置，未设置的字段使用默认值
// filePath 为空时直接返回默认配置
func LoadFromFile(filePath string) (*Config, error) {
	cfg := Default()
	if strings.TrimSpace(filePath) == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "加载配置文件失败 %s", filePath)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "解析配置文件失败 %s", filePath)
	}
	if len(cfg.Strategies) == 0 {
		cfg.Strategies = append([]string(nil), strategies.DefaultOrder...)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "配置验证失败")
	}
	return cfg, nil
}

// ApplyEnv 用环境变量覆盖配置
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		c.LogFile = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvStrategies)); v != "" {
		c.Strategies = SplitList(v)
	}
}

// Validate 校验配置
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config 不能为空")
	}
	switch strings.ToLower(c.LogLevel) {
	case "", "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic":
	default:
		return errors.Errorf("未知日志级别: %s", c.LogLevel)
	}
	if len(c.Strategies) == 0 {
		return errors.New("strategies 不能为空")
	}
	return nil
}

// SplitList 按逗号拆分，去掉空白项
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
