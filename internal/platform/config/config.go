package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	FileName = "bikeshare.yaml"

	FormatCSV    = "csv"
	FormatSQLite = "sqlite"

	DefaultPageSize = 5
)

// Columns maps trip fields to the header names used by the source files.
type Columns struct {
	StartTime    string `yaml:"start_time"`
	EndTime      string `yaml:"end_time"`
	StartStation string `yaml:"start_station"`
	EndStation   string `yaml:"end_station"`
	TripDuration string `yaml:"trip_duration"`
	UserType     string `yaml:"user_type"`
	Gender       string `yaml:"gender"`
	BirthYear    string `yaml:"birth_year"`
}

type CitySource struct {
	File   string `yaml:"file"`
	Format string `yaml:"format"`
}

type Config struct {
	DataDir          string                `yaml:"data_dir"`
	DBPath           string                `yaml:"db_path"`
	PageSize         int                   `yaml:"page_size"`
	LogLevel         string                `yaml:"log_level"`
	LogFile          string                `yaml:"log_file"`
	TimestampLayouts []string              `yaml:"timestamp_layouts"`
	Cities           map[string]CitySource `yaml:"cities"`
	Columns          Columns               `yaml:"columns"`
}

func DefaultColumns() Columns {
	return Columns{
		StartTime:    "Start Time",
		EndTime:      "End Time",
		StartStation: "Start Station",
		EndStation:   "End Station",
		TripDuration: "Trip Duration",
		UserType:     "User Type",
		Gender:       "Gender",
		BirthYear:    "Birth Year",
	}
}

// New returns the built-in configuration rooted at dataDir.
func New(dataDir string) (Config, error) {
	if strings.TrimSpace(dataDir) == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	return Config{
		DataDir:          dataDir,
		DBPath:           filepath.Join(dataDir, ".bikeshare", "bikeshare.db"),
		PageSize:         DefaultPageSize,
		LogLevel:         "info",
		TimestampLayouts: []string{"2006-01-02 15:04:05", "2006-01-02 15:04", "2006-01-02T15:04:05Z07:00"},
		Cities: map[string]CitySource{
			"chicago":       {File: "chicago.csv", Format: FormatCSV},
			"new_york_city": {File: "new_york_city.csv", Format: FormatCSV},
			"washington":    {File: "washington.csv", Format: FormatCSV},
		},
		Columns: DefaultColumns(),
	}, nil
}

// Load applies the YAML file at path over the defaults for dataDir. An empty
// path falls back to <dataDir>/bikeshare.yaml when that file exists.
func Load(dataDir, path string) (Config, error) {
	cfg, err := New(dataDir)
	if err != nil {
		return Config{}, err
	}
	explicit := path != ""
	if !explicit {
		path = filepath.Join(dataDir, FileName)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, cfg.Validate()
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var overrides struct {
		DataDir string `yaml:"data_dir"`
		DBPath  string `yaml:"db_path"`
	}
	if err := yaml.Unmarshal(raw, &overrides); err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}

	base := filepath.Dir(path)
	if overrides.DataDir != "" && !filepath.IsAbs(cfg.DataDir) {
		cfg.DataDir = filepath.Join(base, cfg.DataDir)
	}
	switch {
	case overrides.DBPath == "":
		cfg.DBPath = filepath.Join(cfg.DataDir, ".bikeshare", "bikeshare.db")
	case !filepath.IsAbs(cfg.DBPath):
		cfg.DBPath = filepath.Join(base, cfg.DBPath)
	}
	if cfg.LogFile != "" && !filepath.IsAbs(cfg.LogFile) {
		cfg.LogFile = filepath.Join(base, cfg.LogFile)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.PageSize <= 0 {
		return fmt.Errorf("page_size must be positive, got %d", c.PageSize)
	}
	if len(c.TimestampLayouts) == 0 {
		return fmt.Errorf("timestamp_layouts must not be empty")
	}
	for city, source := range c.Cities {
		switch source.Format {
		case FormatCSV:
			if strings.TrimSpace(source.File) == "" {
				return fmt.Errorf("city %s: file is required", city)
			}
		case FormatSQLite:
			if strings.TrimSpace(source.File) != "" {
				return fmt.Errorf("city %s: sqlite sources read from db_path and take no file", city)
			}
		default:
			return fmt.Errorf("city %s: unsupported format %q", city, source.Format)
		}
	}
	return nil
}

// SourcePath resolves a city's file against the data dir. SQLite sources
// read from the shared database.
func (c Config) SourcePath(source CitySource) string {
	if source.Format == FormatSQLite {
		return c.DBPath
	}
	if filepath.IsAbs(source.File) {
		return source.File
	}
	return filepath.Join(c.DataDir, source.File)
}
