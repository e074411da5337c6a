package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rouhjp/rouh-mahjong-net-sub000/runtime/game/engines/mahjong"
	"github.com/spf13/viper"
)

// ScorerConf 当前生效的配置，InitConfig / 热更新后替换
var ScorerConf ScorerConfiguration

type BaseConfig struct {
	ID         string `mapstructure:"id"`
	ServerType string `mapstructure:"serverType"`
}

type ScorerConfiguration struct {
	BaseConfig `mapstructure:",squash"`
	LogConf    `mapstructure:"log"`
	RuleConf   `mapstructure:"rule"`
	CacheConf  `mapstructure:"cache"`
	WorkerConf `mapstructure:"worker"`
}

type LogConf struct {
	Level string `mapstructure:"level"`
}

// RuleConf 对应 mahjong.Rules
type RuleConf struct {
	OpenTanyao   bool `mapstructure:"openTanyao"`
	RedFives     bool `mapstructure:"redFives"`
	DoubleLimit  bool `mapstructure:"doubleLimit"`
	CountedLimit bool `mapstructure:"countedLimit"`
	DepositUnit  int  `mapstructure:"depositUnit"`
	StreakUnit   int  `mapstructure:"streakUnit"`
	DrawPot      int  `mapstructure:"drawPot"`
}

func (r RuleConf) ToRules() mahjong.Rules {
	return mahjong.Rules{
		OpenTanyao:   r.OpenTanyao,
		RedFives:     r.RedFives,
		DoubleLimit:  r.DoubleLimit,
		CountedLimit: r.CountedLimit,
		DepositUnit:  r.DepositUnit,
		StreakUnit:   r.StreakUnit,
		DrawPot:      r.DrawPot,
	}
}

type CacheConf struct {
	Enabled    bool  `mapstructure:"enabled"`
	MaxEntries int64 `mapstructure:"maxEntries"`
	TTLSeconds int   `mapstructure:"ttlSeconds"`
}

type WorkerConf struct {
	MaxRunRoutineNum int `mapstructure:"maxRunRoutineNum"`
	HandleTimeout    int `mapstructure:"handleTimeout"` // 单位秒，批量计分整体超时
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("id", "scorer-1")
	v.SetDefault("serverType", "scorer")
	v.SetDefault("log.level", "info")
	v.SetDefault("rule.openTanyao", true)
	v.SetDefault("rule.redFives", true)
	v.SetDefault("rule.doubleLimit", true)
	v.SetDefault("rule.countedLimit", true)
	v.SetDefault("rule.depositUnit", 1000)
	v.SetDefault("rule.streakUnit", 300)
	v.SetDefault("rule.drawPot", 3000)
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.maxEntries", 1<<16)
	v.SetDefault("cache.ttlSeconds", 600)
	v.SetDefault("worker.maxRunRoutineNum", 8)
	v.SetDefault("worker.handleTimeout", 10)
}

func newViper(configFile string) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(configFile)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

// Load 读取配置文件；文件为空串时只用默认值与环境变量
func Load(configFile string) (ScorerConfiguration, error) {
	var cfg ScorerConfiguration
	v := newViper(configFile)
	if configFile != "" {
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("读取配置文件 %s 失败: %w", configFile, err)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("解析配置失败: %w", err)
	}
	cfg.Inherit()
	return cfg, nil
}

// InitConfig 加载并写入全局 ScorerConf
func InitConfig(configFile string) error {
	cfg, err := Load(configFile)
	if err != nil {
		return err
	}
	ScorerConf = cfg
	return nil
}

// Inherit 补齐非法的数值项
func (c *ScorerConfiguration) Inherit() {
	if c.MaxRunRoutineNum <= 0 {
		c.MaxRunRoutineNum = 1
	}
	if c.HandleTimeout <= 0 {
		c.HandleTimeout = 10
	}
	if c.MaxEntries <= 0 {
		c.Enabled = false
	}
}

// Watcher 配置热更新
type Watcher struct {
	v  *viper.Viper
	mu sync.Mutex
}

// Watch 监听配置文件，变更后重新解析并回调；解析失败时回调 err
func Watch(configFile string, onChange func(ScorerConfiguration, error)) (*Watcher, error) {
	w := &Watcher{v: newViper(configFile)}
	if err := w.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("读取配置文件 %s 失败: %w", configFile, err)
	}
	w.v.OnConfigChange(func(in fsnotify.Event) {
		if !in.Has(fsnotify.Write) && !in.Has(fsnotify.Create) {
			return
		}
		w.mu.Lock()
		defer w.mu.Unlock()
		var cfg ScorerConfiguration
		if err := w.v.Unmarshal(&cfg); err != nil {
			onChange(cfg, fmt.Errorf("解析配置失败: %w", err))
			return
		}
		cfg.Inherit()
		onChange(cfg, nil)
	})
	w.v.WatchConfig()
	return w, nil
}
