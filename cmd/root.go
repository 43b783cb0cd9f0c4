package cmd

import (
	"errors"
	"io/fs"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/job-matcher/internal/matching"
	"github.com/spigell/job-matcher/internal/screening"
	"github.com/spigell/job-matcher/internal/similarity"
)

const (
	app = "job-matcher"
)

type Config struct {
	Matching  matching.Config  `mapstructure:"matching"`
	AI        *AIConfig        `mapstructure:"ai"`
	Cache     *CacheConfig     `mapstructure:"cache"`
	Screening screening.Config `mapstructure:"screening"`
	Jobs      []map[string]any `mapstructure:"jobs"`
}

type AIConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Gemini  *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKey            string        `mapstructure:"api-key"`
	APIKeyFile        string        `mapstructure:"api-key-file"`
	Model             string        `mapstructure:"model"`
	Timeout           time.Duration `mapstructure:"timeout"`
	RequestsPerSecond float64       `mapstructure:"requests-per-second"`
}

type CacheConfig struct {
	RedisURL string        `mapstructure:"redis-url"`
	TTL      time.Duration `mapstructure:"ttl"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "job-matcher scores how well candidates fit job postings",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	envs := map[string]string{
		"ai.gemini.api-key":      "GEMINI_API_KEY",
		"ai.gemini.api-key-file": "GEMINI_API_KEY_FILE",
		"cache.redis-url":        "REDIS_URL",
	}
	for key, env := range envs {
		if err := viper.BindEnv(key, env); err != nil {
			log.Fatalf("binding %s environment variable: %v", env, err)
		}
	}

	setDefaults()

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is job-matcher.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func setDefaults() {
	defaults := matching.DefaultConfig()
	viper.SetDefault("matching.weights.skill", defaults.Weights.Skill)
	viper.SetDefault("matching.weights.experience", defaults.Weights.Experience)
	viper.SetDefault("matching.weights.semantic", defaults.Weights.Semantic)
	viper.SetDefault("matching.partial-threshold", defaults.PartialThreshold)
	viper.SetDefault("matching.partial-credit", defaults.PartialCredit)
	viper.SetDefault("matching.min-containment-length", defaults.MinContainmentLength)
	viper.SetDefault("matching.entry-level-years", defaults.EntryLevelYears)
	viper.SetDefault("matching.idf", defaults.IDF)

	viper.SetDefault("ai.enabled", false)
	viper.SetDefault("ai.gemini.timeout", similarity.DefaultTimeout)
	viper.SetDefault("cache.ttl", similarity.DefaultCacheTTL)
}

func initConfig() {
	// .env is optional; values already present in the environment win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("loading .env: %v", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
	}

	// The default config file is optional since the built-in catalog and
	// defaults are usable on their own. An explicit one must parse.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
