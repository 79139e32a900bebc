package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultRefreshInterval = 15 * time.Minute

	configPathEnv = "ARENABOARD_CONFIG"
	addrEnv       = "ARENABOARD_ADDR"
	gistURLEnv    = "ARENABOARD_GIST_URL"
	orgEnv        = "ARENABOARD_ORG"
)

// Config holds high-level settings required across the application.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Source  SourceConfig  `yaml:"source"`
	Refresh RefreshConfig `yaml:"refresh"`
	Logging LoggingConfig `yaml:"logging"`
	Site    SiteConfig    `yaml:"site"`
}

// ServerConfig describes the local viewer endpoint.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// SourceConfig describes where the challenge series is hosted.
type SourceConfig struct {
	Name        string `yaml:"name"`
	ListURL     string `yaml:"listUrl"`
	Org         string `yaml:"org"`
	RawBaseURL  string `yaml:"rawBaseUrl"`
	RepoBaseURL string `yaml:"repoBaseUrl"`
	Workers     int    `yaml:"workers"`
}

// RefreshConfig defines how often the document set is refetched.
type RefreshConfig struct {
	Interval string `yaml:"interval"`
}

// IntervalDuration resolves the refresh interval string, falling back to
// the default when it is empty or unparsable.
func (r RefreshConfig) IntervalDuration() time.Duration {
	if r.Interval == "" {
		return defaultRefreshInterval
	}
	d, err := time.ParseDuration(r.Interval)
	if err != nil || d <= 0 {
		log.Printf("config: invalid refresh interval %q, using %s", r.Interval, defaultRefreshInterval)
		return defaultRefreshInterval
	}
	return d
}

// LoggingConfig controls slog verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// SiteConfig holds the static bits rendered on every page.
type SiteConfig struct {
	Title     string `yaml:"title"`
	OrgURL    string `yaml:"orgUrl"`
	Author    string `yaml:"author"`
	AuthorURL string `yaml:"authorUrl"`
}

// Load reads YAML configuration (if present) and applies environment
// overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(addrEnv); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv(gistURLEnv); v != "" {
		c.Source.ListURL = v
	}
	if v := os.Getenv(orgEnv); v != "" {
		c.Source.Org = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Server.Addr != "" {
		base.Server = override.Server
	}

	if override.Source.Name != "" {
		base.Source.Name = override.Source.Name
	}
	if override.Source.ListURL != "" {
		base.Source.ListURL = override.Source.ListURL
	}
	if override.Source.Org != "" {
		base.Source.Org = override.Source.Org
	}
	if override.Source.RawBaseURL != "" {
		base.Source.RawBaseURL = override.Source.RawBaseURL
	}
	if override.Source.RepoBaseURL != "" {
		base.Source.RepoBaseURL = override.Source.RepoBaseURL
	}
	if override.Source.Workers > 0 {
		base.Source.Workers = override.Source.Workers
	}

	if override.Refresh.Interval != "" {
		base.Refresh = override.Refresh
	}
	if override.Logging.Level != "" {
		base.Logging = override.Logging
	}

	if override.Site.Title != "" {
		base.Site.Title = override.Site.Title
	}
	if override.Site.OrgURL != "" {
		base.Site.OrgURL = override.Site.OrgURL
	}
	if override.Site.Author != "" {
		base.Site.Author = override.Site.Author
	}
	if override.Site.AuthorURL != "" {
		base.Site.AuthorURL = override.Site.AuthorURL
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Server: ServerConfig{Addr: ":8080"},
		Source: SourceConfig{
			Name:        "github",
			ListURL:     "https://gist.githubusercontent.com/thomaswright/06e827401a84cd949997b56de8a0e345/raw/6c91045fc9acb0f25f04a75d9062f8947d7cddfd/algorithm-arena-repos.json",
			Org:         "Algorithm-Arena",
			RawBaseURL:  "https://raw.githubusercontent.com",
			RepoBaseURL: "https://github.com",
			Workers:     8,
		},
		Refresh: RefreshConfig{Interval: "15m"},
		Logging: LoggingConfig{Level: "info"},
		Site: SiteConfig{
			Title:     "Algorithm Arena",
			OrgURL:    "https://github.com/Algorithm-Arena",
			Author:    "@vjeux",
			AuthorURL: "https://github.com/vjeux",
		},
	}
}
