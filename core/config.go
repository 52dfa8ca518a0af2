package core

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config holds every knob the client needs. A single instance is built at
// process start and passed down explicitly; nothing reads the environment
// after NewConfig returns.
type Config struct {
	AppName string
	Env     string // DEV (local; default), TEST, QA, PROD
	Debug   bool
	Build   string

	// APIURL is the base endpoint of the attendance server.
	APIURL string
	// RequestTimeout bounds every gateway call.
	RequestTimeout time.Duration

	// CredentialsFile is where the session token and cached teacher profile
	// live between runs.
	CredentialsFile string

	RollbarToken string
}

// NewConfig loads configuration from defaults, an optional .env file and the
// environment (prefixed with the current ENV).
func NewConfig() (*Config, error) {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "Attentiveness")
	conf.SetDefault("build", "")
	conf.SetDefault("apiUrl", "http://localhost:8000")
	conf.SetDefault("requestTimeout", 30*time.Second)
	conf.SetDefault("credentialsFile", defaultCredentialsFile())
	conf.SetDefault("rollbarToken", "")

	env := os.Getenv("ENV")
	if env == "" {
		env = "DEV"
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(".", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return nil, errors.Wrapf(err, "config: loading %s", dotEnvPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "config: stat %s", dotEnvPath)
	}
	conf.AutomaticEnv()

	cfg := &Config{
		AppName:         conf.GetString("appName"),
		Env:             env,
		Debug:           conf.GetBool("debug"),
		Build:           conf.GetString("build"),
		APIURL:          strings.TrimRight(conf.GetString("apiUrl"), "/"),
		RequestTimeout:  conf.GetDuration("requestTimeout"),
		CredentialsFile: conf.GetString("credentialsFile"),
		RollbarToken:    conf.GetString("rollbarToken"),
	}
	if cfg.APIURL == "" {
		return nil, errors.New("config: apiUrl is required")
	}
	return cfg, nil
}

func defaultCredentialsFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".attentiveness", "credentials.json")
}
