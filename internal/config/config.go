package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"passwordSecurityDemo/internal/pkg/validation"
)

const (
	defaultPath = "."
	envPrefix   = "PSD_"
	fileName    = "config"
)

type Config struct {
	Env struct {
		ServiceName string `yaml:"serviceName"`
		Debug       bool   `yaml:"debug"`
		Log         Log    `yaml:"log"`
	} `yaml:"env"`

	Simulation SimulationConfig `yaml:"simulation"`
	Generator  GeneratorConfig  `yaml:"generator"`
	Storage    StorageConfig    `yaml:"storage"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

type Log struct {
	Pretty bool   `yaml:"pretty"`
	Level  string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
}

// SimulationConfig controls the attack animation.
type SimulationConfig struct {
	// Wall-clock cadence of simulation ticks
	TickInterval time.Duration `yaml:"tickInterval" validate:"gt=0"`
	// Upper bound on a single snapshot storage call
	StoreTimeout  time.Duration `yaml:"storeTimeout" validate:"gt=0"`
	DefaultMethod string        `yaml:"defaultMethod" validate:"oneof=brute-force dictionary smart"`
	DefaultSpeed  float64       `yaml:"defaultSpeed" validate:"gte=1"`
	MaxSpeed      float64       `yaml:"maxSpeed" validate:"gtefield=DefaultSpeed"`
}

type GeneratorConfig struct {
	DefaultLength int `yaml:"defaultLength" validate:"gtefield=MinLength,ltefield=MaxLength"`
	MinLength     int `yaml:"minLength" validate:"gte=1"`
	MaxLength     int `yaml:"maxLength" validate:"gtefield=MinLength"`
	// Pause before a generated password is returned
	Delay time.Duration `yaml:"delay" validate:"gte=0"`
}

// StorageConfig selects where simulation snapshots live.
type StorageConfig struct {
	Backend string      `yaml:"backend" validate:"oneof=none memory file redis"`
	Key     string      `yaml:"key" validate:"required"`
	Dir     string      `yaml:"dir" validate:"required_if=Backend file"`
	Redis   RedisConfig `yaml:"redis"`
}

type RedisConfig struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db" validate:"gte=0"`
	Prefix   string        `yaml:"prefix"`
	TTL      time.Duration `yaml:"ttl" validate:"gte=0"`
}

type MetricsConfig struct {
	Enabled        bool          `yaml:"enabled"`
	SampleInterval time.Duration `yaml:"sampleInterval" validate:"gt=0"`
	ReportPath     string        `yaml:"reportPath"`
}

// Default is the configuration used when no file overrides it.
func Default() *Config {
	cfg := &Config{
		Simulation: SimulationConfig{
			TickInterval:  16 * time.Millisecond,
			StoreTimeout:  150 * time.Millisecond,
			DefaultMethod: "brute-force",
			DefaultSpeed:  1,
			MaxSpeed:      100,
		},
		Generator: GeneratorConfig{
			DefaultLength: 12,
			MinLength:     4,
			MaxLength:     24,
			Delay:         300 * time.Millisecond,
		},
		Storage: StorageConfig{
			Backend: "memory",
			Key:     "brute-force-simulation-state",
			Dir:     "./data",
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: "psd:",
			},
		},
		Metrics: MetricsConfig{
			Enabled:        true,
			SampleInterval: time.Second,
		},
	}
	cfg.Env.ServiceName = "password-security-demo"
	cfg.Env.Log.Level = "info"
	return cfg
}

// RedisOptions builds the go-redis client options for the redis backend.
func (c *StorageConfig) RedisOptions() *redis.Options {
	return &redis.Options{
		Addr:     c.Redis.Addr,
		Password: c.Redis.Password,
		DB:       c.Redis.DB,
	}
}

// New loads .env, then config.yaml from the usual search paths, then PSD_
// environment overrides, on top of Default.
func New() (*Config, error) {
	// A missing .env is normal outside development.
	_ = godotenv.Load()

	return Load(fileName, "config", "../config", "../../config")
}

// Load reads name.yaml from the first search path that has it. A missing
// file is not an error.
func Load(name string, configPath ...string) (*Config, error) {
	cfg := Default()
	k := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	for _, path := range searchPaths {
		candidate := filepath.Join(path, name+".yaml")
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		if err := k.Load(file.Provider(candidate), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "read %s config failed", candidate)
		}
		break
	}

	existing := k.Raw()
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(strings.TrimPrefix(key, envPrefix), existing), value
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			TagName:          "yaml",
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", name)
	}

	if err := validation.Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return cfg, nil
}

// canonicalizeEnvKey turns SIMULATION_TICKINTERVAL into simulation.tickInterval
// when the YAML already spells the key that way.
func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}
		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
			continue
		}
		canonical = append(canonical, segment)
		current = nil
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (string, map[string]any, bool) {
	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}
		child, _ := value.(map[string]any)
		return key, child, true
	}
	return "", nil, false
}

func normalizeToken(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
