package config

import (
	"os"
	"path"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	Port               string        `yaml:"port"`
	LogLevel           string        `yaml:"log_level"`
	LogJSON            bool          `yaml:"log_json"`
	CORSAllowedOrigins []string      `yaml:"cors_allowed_origins"`
	ContactRatePerMin  float64       `yaml:"contact_rate_per_min"` // contact form submissions per minute per IP
	ContactBurst       float64       `yaml:"contact_burst"`
	RateLimiterTTL     time.Duration `yaml:"rate_limiter_ttl"`
}

type Private struct {
	Email Email `yaml:"email"`
}

// Email holds the transactional email provider settings.
// An empty ApiKey degrades delivery to the console sender.
type Email struct {
	ApiKey    string `yaml:"api_key"`
	From      string `yaml:"from"`
	To        string `yaml:"to"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file")
	}
}

// MustLoad reads public.yaml and private.yaml from configFolder and applies
// environment overrides. Secrets normally arrive via env, not the yaml.
func MustLoad(configFolder string) *Config {
	_ = godotenv.Load()

	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	privatePath := path.Join(configFolder, "private.yaml")
	if _, err := os.Stat(privatePath); err == nil {
		mustLoadPath(privatePath, &private)
	}

	cfg := &Config{public, private}
	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		c.Public.Port = v
	}
	if v := os.Getenv("RESEND_API_KEY"); v != "" {
		c.Private.Email.ApiKey = v
	}
	if v := os.Getenv("CONTACT_FROM_EMAIL"); v != "" {
		c.Private.Email.From = v
	}
	if v := os.Getenv("CONTACT_TO_EMAIL"); v != "" {
		c.Private.Email.To = v
	}
}

func (c *Config) applyDefaults() {
	if c.Public.Port == "" {
		c.Public.Port = "8080"
	}
	if c.Public.LogLevel == "" {
		c.Public.LogLevel = "info"
	}
	if c.Public.ContactRatePerMin == 0 {
		c.Public.ContactRatePerMin = 2
	}
	if c.Public.ContactBurst == 0 {
		c.Public.ContactBurst = 3
	}
	if c.Public.RateLimiterTTL == 0 {
		c.Public.RateLimiterTTL = time.Hour
	}
}
