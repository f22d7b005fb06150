package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// 默认值
const (
	defaultStartingPoints = 100
	defaultMinCost        = 20
	defaultCostPercent    = 10
	defaultRedrawBudget   = 5
	defaultFrameInterval  = 100 // 毫秒
	defaultSoundDir       = "assets/sounds"
	defaultLogLevel       = "info"

	envPrefix = "poker"
)

// Config 游戏配置
type Config struct {
	Game  GameConfig  `yaml:"game" envconfig:"game"`
	Log   LogConfig   `yaml:"log" envconfig:"log"`
	Sound SoundConfig `yaml:"sound" envconfig:"sound"`
}

// GameConfig 积分与回合配置
type GameConfig struct {
	StartingPoints int  `yaml:"starting_points" envconfig:"starting_points"`
	MinCost        int  `yaml:"min_cost" envconfig:"min_cost"`
	CostPercent    int  `yaml:"cost_percent" envconfig:"cost_percent"` // 每局花费占当前积分的百分比
	RedrawBudget   int  `yaml:"redraw_budget" envconfig:"redraw_budget"`
	FrameInterval  int  `yaml:"frame_interval" envconfig:"frame_interval"` // 刷新间隔（毫秒）
	HidePreview    bool `yaml:"hide_preview" envconfig:"hide_preview"`     // 未揭开的牌显示为背面
}

// LogConfig 日志配置
type LogConfig struct {
	Dir   string `yaml:"dir" envconfig:"dir"` // 为空时使用 ~/.poker-machine
	Level string `yaml:"level" envconfig:"level"`
}

// SoundConfig 音效配置
type SoundConfig struct {
	Mute bool   `yaml:"mute" envconfig:"mute"`
	Dir  string `yaml:"dir" envconfig:"dir"`
}

// FrameDuration 返回每帧的时长
func (c *GameConfig) FrameDuration() time.Duration {
	return time.Duration(c.FrameInterval) * time.Millisecond
}

// Load 加载配置文件，随后用环境变量覆盖
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default 返回默认配置（环境变量仍然生效）
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	if err := cfg.applyEnv(); err != nil || cfg.Validate() != nil {
		cfg = &Config{}
		cfg.applyDefaults()
	}
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Game.StartingPoints == 0 {
		c.Game.StartingPoints = defaultStartingPoints
	}
	if c.Game.MinCost == 0 {
		c.Game.MinCost = defaultMinCost
	}
	if c.Game.CostPercent == 0 {
		c.Game.CostPercent = defaultCostPercent
	}
	if c.Game.RedrawBudget == 0 {
		c.Game.RedrawBudget = defaultRedrawBudget
	}
	if c.Game.FrameInterval == 0 {
		c.Game.FrameInterval = defaultFrameInterval
	}
	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}
	if c.Sound.Dir == "" {
		c.Sound.Dir = defaultSoundDir
	}
}

// applyEnv 读取 .env 文件（可选）并应用 POKER_* 环境变量
func (c *Config) applyEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("读取 .env 失败: %w", err)
	}
	if err := envconfig.Process(envPrefix, c); err != nil {
		return fmt.Errorf("解析环境变量失败: %w", err)
	}
	return nil
}

// Validate 校验配置取值
func (c *Config) Validate() error {
	switch {
	case c.Game.StartingPoints <= 0:
		return fmt.Errorf("starting_points 必须为正数: %d", c.Game.StartingPoints)
	case c.Game.MinCost < 0:
		return fmt.Errorf("min_cost 不能为负数: %d", c.Game.MinCost)
	case c.Game.CostPercent < 0 || c.Game.CostPercent > 100:
		return fmt.Errorf("cost_percent 必须在 0-100 之间: %d", c.Game.CostPercent)
	case c.Game.RedrawBudget < 0 || c.Game.RedrawBudget > 10:
		return fmt.Errorf("redraw_budget 必须在 0-10 之间: %d", c.Game.RedrawBudget)
	case c.Game.FrameInterval < 10:
		return fmt.Errorf("frame_interval 过小: %dms", c.Game.FrameInterval)
	}
	return nil
}
