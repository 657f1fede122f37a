package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

type Runtime struct {
	HTTPAddr         string `toml:"http_addr"`
	CacheMaxItems    int    `toml:"cache_max_items"`
	ObsBuffer        int    `toml:"obs_buffer"`
	BenchRepetitions int    `toml:"bench_repetitions"`
	MaxRepetitions   int    `toml:"max_repetitions"`
	MaxTraceSize     int    `toml:"max_trace_size"`
	MaxBenchSize     int    `toml:"max_bench_size"`
	CatalogFile      string `toml:"catalog_file"`
	Log              Log    `toml:"log"`
}

type Log struct {
	Level      string `toml:"level"`
	Format     string `toml:"format"`
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
}

func Defaults() Runtime {
	return Runtime{
		HTTPAddr:         ":8080",
		CacheMaxItems:    1024,
		ObsBuffer:        4096,
		BenchRepetitions: 5,
		MaxRepetitions:   50,
		MaxTraceSize:     500,
		MaxBenchSize:     100_000,
		Log: Log{
			Level:      "info",
			Format:     "json",
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
	}
}

// Load starts from Defaults, overlays the TOML file named by SORTLAB_CONFIG
// when set, then applies environment overrides.
func Load() (Runtime, error) {
	return LoadFrom(os.Getenv("SORTLAB_CONFIG"))
}

// LoadFrom is Load with an explicit file path. An empty path skips the file.
func LoadFrom(path string) (Runtime, error) {
	cfg := Defaults()
	if path != "" {
		var err error
		cfg, err = LoadFile(path)
		if err != nil {
			return Runtime{}, err
		}
	}
	return applyEnv(cfg), nil
}

// LoadFile decodes a TOML file over Defaults. Keys missing from the file keep
// their default values.
func LoadFile(path string) (Runtime, error) {
	cfg := Defaults()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Runtime{}, fmt.Errorf("config: decode %q: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Runtime{}, fmt.Errorf("config: %q: unknown keys %v", path, undecoded)
	}
	return cfg, nil
}

func applyEnv(cfg Runtime) Runtime {
	cfg.HTTPAddr = getenv("HTTP_ADDR", cfg.HTTPAddr)
	cfg.CacheMaxItems = getenvInt("TRACE_CACHE_MAX_ITEMS", cfg.CacheMaxItems, 0)
	cfg.ObsBuffer = getenvInt("TRACE_OBS_BUFFER", cfg.ObsBuffer, 1)
	cfg.BenchRepetitions = getenvInt("BENCH_REPETITIONS", cfg.BenchRepetitions, 1)
	cfg.MaxRepetitions = getenvInt("MAX_BENCH_REPETITIONS", cfg.MaxRepetitions, 1)
	cfg.MaxTraceSize = getenvInt("MAX_TRACE_SIZE", cfg.MaxTraceSize, 1)
	cfg.MaxBenchSize = getenvInt("MAX_BENCH_SIZE", cfg.MaxBenchSize, 1)
	cfg.CatalogFile = getenv("CATALOG_FILE", cfg.CatalogFile)
	cfg.Log.Level = getenv("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = getenv("LOG_FORMAT", cfg.Log.Format)
	cfg.Log.File = getenv("LOG_FILE", cfg.Log.File)
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback, min int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < min {
		return fallback
	}
	return v
}
