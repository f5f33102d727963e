package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Storage backend names accepted in the configuration.
const (
	BackendMemory = "memory"
	BackendBolt   = "bolt"
	BackendRedis  = "redis"
)

// Config defines the structure of the configuration file.
type Config struct {
	GitCommit    string        `yaml:"git_commit" envconfig:"BCLI_GIT_COMMIT"`
	GitTag       string        `yaml:"git_tag" envconfig:"BCLI_GIT_TAG"`
	BuildTime    string        `yaml:"build_time" envconfig:"BCLI_BUILD_TIME"`
	IsProduction bool          `yaml:"is_production" envconfig:"BCLI_IS_PRODUCTION"`
	LogLevel     zapcore.Level `yaml:"log_level" envconfig:"BCLI_LOG_LEVEL"`
	LogFile      string        `yaml:"log_file" envconfig:"BCLI_LOG_FILE"`
	NoColor      bool          `yaml:"no_color" envconfig:"BCLI_NO_COLOR"`
	Storage      StorageConfig `yaml:"storage"`
	Tokens       TokensConfig  `yaml:"tokens"`
	Redis        RedisConfig   `yaml:"redis"`
	BoltDB       BoltDBConfig  `yaml:"boltdb"`
}

// StorageConfig selects the catalogue backend.
type StorageConfig struct {
	Backend string `yaml:"backend" envconfig:"BCLI_STORAGE_BACKEND"`
}

// TokensConfig holds the reserved single-character command tokens. They
// are fixed at startup and must stay disjoint from the digits 1-9 used
// for field and menu selection.
type TokensConfig struct {
	Save   string `yaml:"save" envconfig:"BCLI_TOKEN_SAVE"`
	Back   string `yaml:"back" envconfig:"BCLI_TOKEN_BACK"`
	Delete string `yaml:"delete" envconfig:"BCLI_TOKEN_DELETE"`
	Exit   string `yaml:"exit" envconfig:"BCLI_TOKEN_EXIT"`
}

type RedisConfig struct {
	Host          string        `yaml:"host" envconfig:"BCLI_REDIS_HOST"`
	Port          string        `yaml:"port" envconfig:"BCLI_REDIS_PORT"`
	DialTimeout   time.Duration `yaml:"dial_timeout" envconfig:"BCLI_REDIS_DIAL_TIMEOUT"`
	ReadTimeout   time.Duration `yaml:"read_timeout" envconfig:"BCLI_REDIS_READ_TIMEOUT"`
	WriteTimeout  time.Duration `yaml:"write_timeout" envconfig:"BCLI_REDIS_WRITE_TIMEOUT"`
	PoolSize      int           `yaml:"pool_size" envconfig:"BCLI_REDIS_POOL_SIZE"`
	PoolTimeout   time.Duration `yaml:"pool_timeout" envconfig:"BCLI_REDIS_POOL_TIMEOUT"`
	Username      string        `yaml:"username" envconfig:"BCLI_REDIS_USERNAME"`
	Password      string        `yaml:"password" envconfig:"BCLI_REDIS_PASSWORD"`
	DatabaseIndex int           `yaml:"db_index" envconfig:"BCLI_REDIS_DATABASE_INDEX"`
}

type BoltDBConfig struct {
	FilePath      string        `yaml:"filepath" envconfig:"BCLI_BOLTDB_FILE_PATH"`
	Timeout       time.Duration `yaml:"timeout" envconfig:"BCLI_BOLTDB_TIMEOUT"`
	BucketName    string        `yaml:"bucket_name" envconfig:"BCLI_BOLTDB_BUCKET_NAME"`
	JournalBucket string        `yaml:"journal_bucket" envconfig:"BCLI_BOLTDB_JOURNAL_BUCKET"`
}

// DefaultConfig provides the settings used when no configuration file
// is present. The application must stay usable with zero setup.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: zapcore.InfoLevel,
		LogFile:  "logs/books-cli.log",
		Storage:  StorageConfig{Backend: BackendMemory},
		Tokens:   TokensConfig{Save: "s", Back: "b", Delete: "d", Exit: "q"},
		Redis: RedisConfig{
			Host:        "localhost",
			Port:        "6379",
			DialTimeout: 5 * time.Second,
		},
		BoltDB: BoltDBConfig{
			FilePath:      "data/books.db",
			Timeout:       5 * time.Second,
			BucketName:    "books",
			JournalBucket: "journal",
		},
	}
}

// LoadConfigFile provides an instance of config structure for the all application.
func LoadConfigFile(configFile string) (*Config, error) {
	file, err := os.Open(configFile)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	cfg := DefaultConfig()
	yd := yaml.NewDecoder(file)
	err = yd.Decode(cfg)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfigEnvs reads the environments variables and provides an instance of the App config.
func LoadConfigEnvs(prefix string, config *Config) error {
	return envconfig.Process(prefix, config)
}

// InitConfig setup build tags values to be used if provided and rejects
// unusable settings before any screen is drawn.
func InitConfig(config *Config, gitCommit, gitTag, buildTime string) error {
	if len(gitCommit) != 0 {
		config.GitCommit = gitCommit
	}

	if len(gitTag) != 0 {
		config.GitTag = gitTag
	}

	if len(buildTime) != 0 {
		config.BuildTime = buildTime
	}

	switch config.Storage.Backend {
	case BackendMemory, BackendBolt, BackendRedis:
	default:
		return fmt.Errorf("unknown storage backend %q: use %s, %s or %s",
			config.Storage.Backend, BackendMemory, BackendBolt, BackendRedis)
	}

	if config.Storage.Backend == BackendBolt && len(config.BoltDB.FilePath) == 0 {
		return fmt.Errorf("make sure to set a boltdb file path for the %s backend", BackendBolt)
	}

	if config.Storage.Backend == BackendRedis && (len(config.Redis.Host) == 0 || len(config.Redis.Port) == 0) {
		return fmt.Errorf("make sure to set valid redis address and port for the %s backend", BackendRedis)
	}

	return ValidateTokens(&config.Tokens)
}

// ValidateTokens ensures the reserved command tokens are usable: each
// present, pairwise distinct and never one of the selection digits.
func ValidateTokens(tokens *TokensConfig) error {
	named := map[string]string{
		"save":   tokens.Save,
		"back":   tokens.Back,
		"delete": tokens.Delete,
		"exit":   tokens.Exit,
	}
	seen := make(map[string]string, len(named))
	for name, value := range named {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("reserved token %q must not be empty", name)
		}
		if len(value) == 1 && value >= "1" && value <= "9" {
			return fmt.Errorf("reserved token %q must not be a selection digit", name)
		}
		if other, ok := seen[value]; ok {
			return fmt.Errorf("reserved tokens %q and %q must differ", other, name)
		}
		seen[value] = name
	}
	return nil
}

// LoadAndInitConfigs loads in order the configs from various predefined
// sources then build the App configuration data. A missing config file
// or env file is not an error: the defaults keep the CLI usable.
func LoadAndInitConfigs(gitCommit, gitTag, buildTime string) (*Config, error) {
	config, err := LoadConfigFile("./config.yml")
	if os.IsNotExist(err) {
		config = DefaultConfig()
	} else if err != nil {
		return config, fmt.Errorf("failed to load configurations from file: %s", err)
	}

	// Set the environment configuration when a dotenv file is around.
	if err = godotenv.Load("./config.env"); err != nil && !os.IsNotExist(err) {
		return config, fmt.Errorf("failed to set environment configurations: %s", err)
	}

	// Use environment variables with prefix `BCLI`.
	err = LoadConfigEnvs("BCLI", config)
	if err != nil {
		return config, fmt.Errorf("failed to load configurations from environment: %s", err)
	}

	err = InitConfig(config, gitCommit, gitTag, buildTime)
	if err != nil {
		return config, fmt.Errorf("failed to initialize configurations: %s", err)
	}
	return config, nil
}
