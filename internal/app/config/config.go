package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 应用配置
type Config struct {
	App      AppConfig       `mapstructure:"app"`
	Server   ServerConfig    `mapstructure:"server"`
	MySQL    MySQLConfig     `mapstructure:"mysql"`
	Redis    RedisConfig     `mapstructure:"redis"`
	Lmstfy   LmstfyConfig    `mapstructure:"lmstfy"`
	Alerts   AlertsConfig    `mapstructure:"alerts"`
	Cadences []CadenceConfig `mapstructure:"cadences"`
}

// AppConfig 应用配置
type AppConfig struct {
	Name         string `mapstructure:"name"`
	Env          string `mapstructure:"env"`
	LogLevel     string `mapstructure:"log_level"`
	SeedDemoData bool   `mapstructure:"seed_demo_data"`
}

// ServerConfig HTTP 服务配置
type ServerConfig struct {
	Port string `mapstructure:"port"`
}

// MySQLConfig MySQL 配置
type MySQLConfig struct {
	DSN string `mapstructure:"dsn"`
}

// RedisConfig Redis 配置（告警 Pub/Sub 通道；Addr 为空则不启用）
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Channel  string `mapstructure:"channel"`
}

// LmstfyConfig Lmstfy 配置（邮件告警投递队列；Host 为空则不启用）
type LmstfyConfig struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Namespace string `mapstructure:"namespace"`
	Token     string `mapstructure:"token"`
	Queue     string `mapstructure:"queue"`
}

// AlertsConfig 告警引擎配置
type AlertsConfig struct {
	HistoryCapacity int           `mapstructure:"history_capacity"` // 历史容量（默认100）
	RecipeLimit     int           `mapstructure:"recipe_limit"`     // 单条告警菜谱上限（默认5）
	ScanTimeout     time.Duration `mapstructure:"scan_timeout"`     // 单次扫描超时
}

// CadenceConfig 调度配置（每个 cadence 是一个独立定时器）
type CadenceConfig struct {
	Name   string        `mapstructure:"name"`
	Mode   string        `mapstructure:"mode"`   // daily | interval
	At     string        `mapstructure:"at"`     // daily 模式的触发时刻 "HH:MM"
	Every  time.Duration `mapstructure:"every"`  // interval 模式的触发间隔
	Window string        `mapstructure:"window"` // tomorrow | week | both
}

// 调度模式与窗口常量
const (
	CadenceModeDaily    = "daily"
	CadenceModeInterval = "interval"

	CadenceWindowTomorrow = "tomorrow"
	CadenceWindowWeek     = "week"
	CadenceWindowBoth     = "both"
)

// Load 加载配置文件
func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config failed: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config failed: %w", err)
	}

	// 兼容性处理：如果 server.port 为空，使用默认值
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Alerts.ScanTimeout <= 0 {
		cfg.Alerts.ScanTimeout = 30 * time.Second
	}

	return &cfg, nil
}

// LoadDefault 加载默认配置文件路径
func LoadDefault() (*Config, error) {
	return Load("config/config.yaml")
}

// Validate 验证配置完整性
func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app.name is required")
	}
	if c.MySQL.DSN == "" {
		return fmt.Errorf("mysql dsn is required")
	}
	if len(c.Cadences) == 0 {
		return fmt.Errorf("at least one cadence is required")
	}

	seen := make(map[string]struct{}, len(c.Cadences))
	for _, cadence := range c.Cadences {
		if cadence.Name == "" {
			return fmt.Errorf("cadence name is required")
		}
		if _, dup := seen[cadence.Name]; dup {
			return fmt.Errorf("duplicate cadence name: %s", cadence.Name)
		}
		seen[cadence.Name] = struct{}{}

		switch cadence.Mode {
		case CadenceModeDaily:
			if _, _, err := ParseDailyAt(cadence.At); err != nil {
				return fmt.Errorf("cadence %s: %w", cadence.Name, err)
			}
		case CadenceModeInterval:
			if cadence.Every <= 0 {
				return fmt.Errorf("cadence %s: every must be positive", cadence.Name)
			}
		default:
			return fmt.Errorf("cadence %s: unknown mode %q", cadence.Name, cadence.Mode)
		}

		switch cadence.Window {
		case CadenceWindowTomorrow, CadenceWindowWeek, CadenceWindowBoth:
		default:
			return fmt.Errorf("cadence %s: unknown window %q", cadence.Name, cadence.Window)
		}
	}

	return nil
}

// ParseDailyAt 解析 "HH:MM" 触发时刻
func ParseDailyAt(at string) (hour, minute int, err error) {
	parts := strings.SplitN(at, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid at %q, expected HH:MM", at)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid at %q, hour out of range", at)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid at %q, minute out of range", at)
	}

	return hour, minute, nil
}
