// Package config loads the game's tunables from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds every tunable the demo reads at startup.
type Config struct {
	InteractRange float32 `validate:"gt=0"`
	UseSphereCast bool
	SphereRadius  float32 `validate:"gte=0"`

	InteractKey  string `validate:"required,len=1,alphanum"`
	DestroyKey   string `validate:"required,len=1,alphanum,nefield=InteractKey"`
	InventoryKey string `validate:"required,len=1,alphanum,nefield=InteractKey"`

	HoldTime      time.Duration `validate:"gt=0"`
	DestroyRadius float32       `validate:"gt=0"`
	RemovalDelay  time.Duration `validate:"gte=0"`

	InventoryWidth  int `validate:"min=1,max=32"`
	InventoryHeight int `validate:"min=1,max=32"`

	AssetRoot      string `validate:"required"`
	AssetCacheSize int    `validate:"min=1"`

	LogLevel    string `validate:"oneof=trace debug info warn warning error fatal panic"`
	LogFormat   string `validate:"oneof=text json"`
	MetricsAddr string `validate:"omitempty,hostname_port"`
}

// Load reads a .env file if there is one, then the environment. Values
// that do not parse are an error; values that parse but are out of range
// are left for Validate.
func Load() (*Config, error) {
	// A missing .env is normal; real env vars win either way
	_ = godotenv.Load()

	p := parser{}
	cfg := &Config{
		InteractRange: p.getFloat("INTERACT_RANGE", 3),
		UseSphereCast: p.getBool("USE_SPHERE_CAST", true),
		SphereRadius:  p.getFloat("SPHERE_RADIUS", 0.2),

		InteractKey:  strings.ToUpper(getEnv("INTERACT_KEY", "E")),
		DestroyKey:   strings.ToUpper(getEnv("DESTROY_KEY", "H")),
		InventoryKey: strings.ToUpper(getEnv("INVENTORY_KEY", "I")),

		HoldTime:      p.getDuration("HOLD_TIME", 1500*time.Millisecond),
		DestroyRadius: p.getFloat("DESTROY_RADIUS", 3),
		RemovalDelay:  p.getDuration("REMOVAL_DELAY", 2*time.Second),

		InventoryWidth:  p.getInt("INVENTORY_WIDTH", 8),
		InventoryHeight: p.getInt("INVENTORY_HEIGHT", 6),

		AssetRoot:      getEnv("ASSET_ROOT", "assets/images"),
		AssetCacheSize: p.getInt("ASSET_CACHE_SIZE", 64),

		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", "text")),
		MetricsAddr: getEnv("METRICS_ADDR", ""),
	}
	if err := errors.Join(p.errs...); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks the ranges in the struct tags.
func (c *Config) Validate() error {
	return validate.Struct(c)
}

// Violations turns a Validate error into one readable line per field.
func Violations(err error) []string {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(verrs))
	for _, e := range verrs {
		if e.Param() != "" {
			out = append(out, fmt.Sprintf("%s=%v fails %s=%s", e.Field(), e.Value(), e.Tag(), e.Param()))
		} else {
			out = append(out, fmt.Sprintf("%s=%v fails %s", e.Field(), e.Value(), e.Tag()))
		}
	}
	return out
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// parser collects parse errors so Load can report all of them at once.
type parser struct {
	errs []error
}

func (p *parser) fail(key, value string, err error) {
	p.errs = append(p.errs, fmt.Errorf("invalid %s value %q: %w", key, value, err))
}

func (p *parser) getFloat(key string, def float32) float32 {
	s, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		p.fail(key, s, err)
		return def
	}
	return float32(v)
}

func (p *parser) getInt(key string, def int) int {
	s, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		p.fail(key, s, err)
		return def
	}
	return v
}

func (p *parser) getBool(key string, def bool) bool {
	s, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	v, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		p.fail(key, s, err)
		return def
	}
	return v
}

// getDuration accepts Go durations ("1.5s") or plain seconds ("1.5").
func (p *parser) getDuration(key string, def time.Duration) time.Duration {
	s, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	s = strings.TrimSpace(s)
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	secs, err := strconv.ParseFloat(s, 64)
	if err != nil {
		p.fail(key, s, err)
		return def
	}
	return time.Duration(secs * float64(time.Second))
}
