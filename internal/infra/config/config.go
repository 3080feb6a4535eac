package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Duration makes time.Duration YAML-friendly, accepting "10s" style values
// as well as plain nanosecond integers.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var nanos int64
	if err := value.Decode(&nanos); err == nil {
		*d = Duration(nanos)
		return nil
	}
	var raw string
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("invalid duration %q", value.Value)
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std converts back to the standard library type.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	LLM      LLMConfig      `yaml:"llm"`
	Weather  WeatherConfig  `yaml:"weather"`
	Mandi    MandiConfig    `yaml:"mandi"`
	Distance DistanceConfig `yaml:"distance"`
	Terminal TerminalConfig `yaml:"terminal"`
	Trade    TradeConfig    `yaml:"trade"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    Duration        `yaml:"readTimeout"`
	WriteTimeout   Duration        `yaml:"writeTimeout"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// LLMConfig contains Gemini settings.
type LLMConfig struct {
	APIKey       string   `yaml:"apiKey"`
	BaseURL      string   `yaml:"baseUrl"`
	Model        string   `yaml:"model"`
	InsightModel string   `yaml:"insightModel"`
	Timeout      Duration `yaml:"timeout"`
}

// WeatherConfig contains WeatherAPI settings.
type WeatherConfig struct {
	APIKey       string `yaml:"apiKey"`
	BaseURL      string `yaml:"baseUrl"`
	ForecastDays int    `yaml:"forecastDays"`
}

// MandiConfig contains data.gov.in Agmarknet settings.
type MandiConfig struct {
	APIKey      string `yaml:"apiKey"`
	ResourceURL string `yaml:"resourceUrl"`
	RecordLimit int    `yaml:"recordLimit"`
}

// DistanceConfig contains distance-matrix provider settings.
type DistanceConfig struct {
	APIKey  string `yaml:"apiKey"`
	BaseURL string `yaml:"baseUrl"`
}

// TerminalConfig defines defaults for the market terminal aggregate.
type TerminalConfig struct {
	DefaultCommodity   string `yaml:"defaultCommodity"`
	DefaultLocation    string `yaml:"defaultLocation"`
	DefaultHarvestDays int    `yaml:"defaultHarvestDays"`
	ForecastDays       int    `yaml:"forecastDays"`
	InsightSampleSize  int    `yaml:"insightSampleSize"`
	ForecastMode       string `yaml:"forecastMode"`
}

// TradeConfig defines the trade simulation cost model.
type TradeConfig struct {
	DomesticRateMin      float64 `yaml:"domesticRateMin"`
	DomesticRateMax      float64 `yaml:"domesticRateMax"`
	InternationalRateMin float64 `yaml:"internationalRateMin"`
	InternationalRateMax float64 `yaml:"internationalRateMax"`
	DefaultDistanceKM    float64 `yaml:"defaultDistanceKm"`
}

// Load reads configuration from an optional .env file, a YAML file and
// environment variables, in increasing order of precedence.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitAndTrim(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("GEMINI_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("GEMINI_INSIGHT_MODEL"); v != "" {
		cfg.LLM.InsightModel = v
	}
	if v := os.Getenv("GEMINI_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.LLM.Timeout = Duration(parsed)
		}
	}
	if v := os.Getenv("WEATHER_API_KEY"); v != "" {
		cfg.Weather.APIKey = v
	}
	if v := os.Getenv("WEATHER_BASE_URL"); v != "" {
		cfg.Weather.BaseURL = v
	}
	if v := os.Getenv("DATA_GOV_API_KEY"); v != "" {
		cfg.Mandi.APIKey = v
	}
	if v := os.Getenv("DATA_GOV_RESOURCE_URL"); v != "" {
		cfg.Mandi.ResourceURL = v
	}
	if v := os.Getenv("DATA_GOV_RECORD_LIMIT"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Mandi.RecordLimit = parsed
		}
	}
	if v := os.Getenv("GOOGLE_MAPS_API_KEY"); v != "" {
		cfg.Distance.APIKey = v
	}
	if v := os.Getenv("GOOGLE_MAPS_BASE_URL"); v != "" {
		cfg.Distance.BaseURL = v
	}
	if v := os.Getenv("TERMINAL_FORECAST_MODE"); v != "" {
		cfg.Terminal.ForecastMode = v
	}
}

func splitAndTrim(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if clean := strings.TrimSpace(p); clean != "" {
			out = append(out, clean)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:        ":8080",
			ReadTimeout:    Duration(10 * time.Second),
			WriteTimeout:   Duration(30 * time.Second),
			AllowedOrigins: []string{"http://localhost:5173"},
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 60,
				Burst:             20,
			},
		},
		LLM: LLMConfig{
			BaseURL:      "https://generativelanguage.googleapis.com",
			Model:        "gemini-2.0-flash",
			InsightModel: "gemini-2.5-flash",
			Timeout:      Duration(12 * time.Second),
		},
		Weather: WeatherConfig{
			BaseURL:      "http://api.weatherapi.com/v1",
			ForecastDays: 7,
		},
		Mandi: MandiConfig{
			ResourceURL: "https://api.data.gov.in/resource/9ef84268-d588-465a-a308-a864a43d0070",
			RecordLimit: 200,
		},
		Distance: DistanceConfig{
			BaseURL: "https://maps.googleapis.com/maps/api/distancematrix/json",
		},
		Terminal: TerminalConfig{
			DefaultCommodity:   "wheat",
			DefaultLocation:    "Indore",
			DefaultHarvestDays: 53,
			ForecastDays:       7,
			InsightSampleSize:  30,
			ForecastMode:       "trend",
		},
		Trade: TradeConfig{
			DomesticRateMin:      50,
			DomesticRateMax:      100,
			InternationalRateMin: 120,
			InternationalRateMax: 200,
			DefaultDistanceKM:    5000,
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.LLM.Model == "" || c.LLM.InsightModel == "" {
		return errors.New("llm.model and llm.insightModel cannot be empty")
	}
	if c.LLM.Timeout <= 0 {
		return errors.New("llm.timeout must be positive")
	}
	if c.Weather.ForecastDays <= 0 {
		return errors.New("weather.forecastDays must be positive")
	}
	if c.Mandi.ResourceURL == "" {
		return errors.New("mandi.resourceUrl cannot be empty")
	}
	if c.Mandi.RecordLimit <= 0 {
		return errors.New("mandi.recordLimit must be positive")
	}
	if c.Terminal.ForecastDays <= 0 {
		return errors.New("terminal.forecastDays must be positive")
	}
	if c.Terminal.InsightSampleSize <= 0 {
		return errors.New("terminal.insightSampleSize must be positive")
	}
	if mode := c.Terminal.ForecastMode; mode != "trend" && mode != "jitter" {
		return errors.New("terminal.forecastMode must be trend or jitter")
	}
	if c.Trade.DomesticRateMin <= 0 || c.Trade.DomesticRateMax < c.Trade.DomesticRateMin {
		return errors.New("trade domestic rate band is invalid")
	}
	if c.Trade.InternationalRateMin <= 0 || c.Trade.InternationalRateMax < c.Trade.InternationalRateMin {
		return errors.New("trade international rate band is invalid")
	}
	if c.Trade.DefaultDistanceKM <= 0 {
		return errors.New("trade.defaultDistanceKm must be positive")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	return nil
}
