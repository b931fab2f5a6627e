package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/gorilla/securecookie"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

const ServiceName = "news"

// Config is everything the server needs from its environment.
type Config struct {
	Addr          string
	DiagAddr      string
	SessionSecret string
	SessionName   string
	Debug         bool
}

// Load reads a .env file from the working directory when there is one, then
// fills a Config from NEWS_* variables.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}

	return FromEnv(), nil
}

func FromEnv() Config {
	return Config{
		Addr:          getEnv("NEWS_ADDR", ":3333"),
		DiagAddr:      getEnv("NEWS_DIAG_ADDR", ":9999"),
		SessionSecret: getEnv("NEWS_SESSION_SECRET", ""),
		SessionName:   getEnv("NEWS_SESSION_NAME", "news_session"),
		Debug:         getEnvBool("NEWS_DEBUG", false),
	}
}

// BindFlags lets command line flags override the environment.
func (c *Config) BindFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Addr, "addr", c.Addr, "application address")
	flags.StringVar(&c.DiagAddr, "diag_addr", c.DiagAddr, "diag address serving /metrics")
	flags.StringVar(&c.SessionName, "session_name", c.SessionName, "session cookie name")
	flags.BoolVar(&c.Debug, "debug", c.Debug, "development logging")
}

// SecretKey returns the session signing key. Without a configured secret a
// random one is generated, so sessions do not survive a restart.
func (c Config) SecretKey() []byte {
	if c.SessionSecret != "" {
		return []byte(c.SessionSecret)
	}

	return securecookie.GenerateRandomKey(32)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}

	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}

	return b
}
