// Package config loads tool settings from settings.yaml and DANC_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	SourceRegistry = "registry"
	SourceFixture  = "fixture"

	settingsName = "settings.yaml"
	envPrefix    = "DANC"
)

type AppConfig struct {
	DataDir      string
	DocumentPath string
	LanguagesDir string
	LogPath      string
	LogLevel     string
	DeviceSource string
	FixturePath  string
	JournalOn    bool
	JournalPath  string
	Elevate      bool
}

var cfg AppConfig

// Init reads settings from path (or settings.yaml next to the executable when
// path is empty). A missing file is not an error.
func Init(path string) (AppConfig, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	exeDir := executableDir()
	if path == "" {
		path = filepath.Join(exeDir, settingsName)
	}
	v.SetConfigFile(path)

	v.SetDefault("data_dir", defaultDataDir())
	v.SetDefault("languages_dir", filepath.Join(exeDir, "Resources", "Languages"))
	v.SetDefault("log.level", "info")
	v.SetDefault("device.source", SourceRegistry)
	v.SetDefault("journal.enabled", true)
	v.SetDefault("elevate", true)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return AppConfig{}, fmt.Errorf("read settings %s: %w", path, err)
		}
	}

	dataDir := v.GetString("data_dir")
	c := AppConfig{
		DataDir:      dataDir,
		DocumentPath: orDefault(v.GetString("document_path"), filepath.Join(dataDir, "config.yaml")),
		LanguagesDir: v.GetString("languages_dir"),
		LogPath:      orDefault(v.GetString("log.path"), filepath.Join(dataDir, "danc.log")),
		LogLevel:     v.GetString("log.level"),
		DeviceSource: strings.ToLower(v.GetString("device.source")),
		FixturePath:  v.GetString("device.fixture_path"),
		JournalOn:    v.GetBool("journal.enabled"),
		JournalPath:  orDefault(v.GetString("journal.path"), filepath.Join(dataDir, "journal.db")),
		Elevate:      v.GetBool("elevate"),
	}
	if err := c.validate(); err != nil {
		return AppConfig{}, err
	}
	cfg = c
	return c, nil
}

func (c AppConfig) validate() error {
	switch c.DeviceSource {
	case SourceRegistry:
	case SourceFixture:
		if c.FixturePath == "" {
			return errors.New("device.fixture_path is required when device.source is fixture")
		}
	default:
		return fmt.Errorf("unknown device.source %q", c.DeviceSource)
	}
	return nil
}

func Get() AppConfig { return cfg }

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

func defaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "DisplayAdapterNameChanger")
	}
	return filepath.Join(base, "DisplayAdapterNameChanger")
}
