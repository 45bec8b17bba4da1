package app

import (
	"os"
	"testing"
	"time"

	"github.com/quaverlabs/brainzgap/pkg/constants"
)

// TestLoadConfig verifies basic config loading.
func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config == nil {
		t.Fatal("LoadConfig() returned nil config")
	}

	// Scan defaults
	if config.Category != constants.DefaultCategory {
		t.Errorf("Category = %s, want %s", config.Category, constants.DefaultCategory)
	}
	if config.Language != constants.DefaultLanguage {
		t.Errorf("Language = %s, want %s", config.Language, constants.DefaultLanguage)
	}
	if config.Property != constants.MusicBrainzArtistProperty {
		t.Errorf("Property = %s, want %s", config.Property, constants.MusicBrainzArtistProperty)
	}
	if config.Pause != constants.DefaultPause {
		t.Errorf("Pause = %v, want %v", config.Pause, constants.DefaultPause)
	}

	// Note: LogLevel stays empty unless set by flag; LogFormat has a default.
	if config.LogFormat == "" {
		t.Error("LogFormat not set to default")
	}
}

// TestConfig_EnvironmentVariables verifies environment variable loading.
func TestConfig_EnvironmentVariables(t *testing.T) {
	t.Setenv("BRAINZGAP_CATEGORY", "Israeli_rock_bands")
	t.Setenv("BRAINZGAP_LANGUAGE", "en")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.Category != "Israeli_rock_bands" {
		t.Errorf("Category = %s, want Israeli_rock_bands", config.Category)
	}
	if config.Language != "en" {
		t.Errorf("Language = %s, want en", config.Language)
	}
}

// TestConfig_PauseDuration verifies time duration parsing from env.
func TestConfig_PauseDuration(t *testing.T) {
	t.Setenv("BRAINZGAP_PAUSE", "250ms")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.Pause != 250*time.Millisecond {
		t.Errorf("Pause = %v, want 250ms", config.Pause)
	}
}

// TestConfig_UpdateFromFlags verifies flag precedence over loaded values.
func TestConfig_UpdateFromFlags(t *testing.T) {
	config := &Config{
		Format:   "json",
		LogLevel: "",
	}

	config.UpdateFromFlags(true, false, true, "yaml", "debug")

	if !config.Verbose {
		t.Error("Verbose flag not applied")
	}
	if config.Quiet {
		t.Error("Quiet should remain false")
	}
	if !config.NoColor {
		t.Error("NoColor flag not applied")
	}
	if config.Format != "yaml" {
		t.Errorf("Format = %s, want yaml", config.Format)
	}
	if config.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug", config.LogLevel)
	}

	// Empty flag values keep the loaded ones.
	config.UpdateFromFlags(true, false, true, "", "")
	if config.Format != "yaml" {
		t.Errorf("Format = %s, want yaml after empty flag", config.Format)
	}
	if config.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug after empty flag", config.LogLevel)
	}
}

// TestGetEnvOrDefault verifies the env fallback helper.
func TestGetEnvOrDefault(t *testing.T) {
	const key = "BRAINZGAP_TEST_ENV_KEY"

	os.Unsetenv(key)
	if got := getEnvOrDefault(key, "fallback"); got != "fallback" {
		t.Errorf("getEnvOrDefault(unset) = %s, want fallback", got)
	}

	t.Setenv(key, "value")
	if got := getEnvOrDefault(key, "fallback"); got != "value" {
		t.Errorf("getEnvOrDefault(set) = %s, want value", got)
	}
}
