package app

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/quaverlabs/brainzgap/pkg/constants"
)

// Config holds the application configuration loaded from config files,
// environment variables, and .env files. Cobra flags override these
// values after parsing.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Scan configuration
	Category  string
	Language  string
	Property  string
	Pause     time.Duration
	Timeout   time.Duration
	UserAgent string

	// Output configuration
	OutputPath string
	Markdown   bool

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (applied by cobra after parsing)
// 2. Environment variables
// 3. .env files
// 4. Config file (~/.brainzgap.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	// Set up Viper for environment variables
	viper.AutomaticEnv()
	viper.SetEnvPrefix("brainzgap")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// Try to read config file if it exists
	configFile := viper.GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		// Search for config in standard locations
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
			viper.SetConfigType("yaml")
			viper.SetConfigName(".brainzgap")
		}
	}

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()

	// Build config from viper
	config := &Config{
		// Global flags (may be overridden by cobra flags later)
		Verbose: viper.GetBool("verbose"),
		Quiet:   viper.GetBool("quiet"),
		NoColor: viper.GetBool("no-color"),
		Format:  viper.GetString("format"),

		// Config file
		ConfigFile: viper.ConfigFileUsed(),

		// Scan configuration
		Category:  viper.GetString("category"),
		Language:  viper.GetString("language"),
		Property:  viper.GetString("property"),
		Pause:     viper.GetDuration("pause"),
		Timeout:   viper.GetDuration("timeout"),
		UserAgent: viper.GetString("user_agent"),

		// Output configuration
		OutputPath: viper.GetString("output"),
		Markdown:   viper.GetBool("markdown"),

		// Logging configuration. LogLevel stays empty unless the flag
		// sets it; NewLogger falls back to LOG_LEVEL itself.
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	// Fill scan defaults; the original driver's fixed configuration
	// survives as defaults only.
	if config.Category == "" {
		config.Category = constants.DefaultCategory
	}
	if config.Language == "" {
		config.Language = constants.DefaultLanguage
	}
	if config.Property == "" {
		config.Property = constants.MusicBrainzArtistProperty
	}
	if !viper.IsSet("pause") {
		config.Pause = constants.DefaultPause
	}

	return config, nil
}

// UpdateFromFlags updates config values from parsed global flags.
// Called after cobra parses flags so flag values take precedence over
// config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env.
func loadEnvFiles() {
	envFiles := []string{
		".env",
		".env.local",
	}

	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
