package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/kloppmigidemo-web/MVPAssessment3/internal/assessment"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName           string
	AppEnv            string
	AppPort           string
	DatabaseURL       string
	AutoMigrate       bool
	CORSAllowOrigins  string
	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string
	SendGridTimeout   time.Duration
	ContactPhone      string
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// IsProduction reports whether the service runs in production.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// EmailEnabled reports whether SendGrid credentials are configured.
func (c Config) EmailEnabled() bool {
	return c.SendGridAPIKey != ""
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("ASSESSMENT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "Leadership Assessment API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("cors.allow_origins", "*")
	v.SetDefault("sendgrid.from_name", "Leadership Assessment")
	v.SetDefault("sendgrid.timeout", "10s")
	v.SetDefault("contact.phone", assessment.DefaultContactPhone)

	timeout, err := time.ParseDuration(v.GetString("sendgrid.timeout"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid sendgrid timeout: %w", err)
	}

	cfg := Config{
		AppName:           v.GetString("app.name"),
		AppEnv:            strings.ToLower(v.GetString("app.env")),
		AppPort:           v.GetString("app.port"),
		DatabaseURL:       v.GetString("database.url"),
		AutoMigrate:       v.GetBool("database.auto_migrate"),
		CORSAllowOrigins:  v.GetString("cors.allow_origins"),
		SendGridAPIKey:    v.GetString("sendgrid.api_key"),
		SendGridFromEmail: v.GetString("sendgrid.from_email"),
		SendGridFromName:  v.GetString("sendgrid.from_name"),
		SendGridTimeout:   timeout,
		ContactPhone:      v.GetString("contact.phone"),
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("database url must be provided")
	}
	if c.EmailEnabled() && c.SendGridFromEmail == "" {
		return fmt.Errorf("sendgrid sender address must be provided with an api key")
	}
	if c.IsProduction() && !c.EmailEnabled() {
		return fmt.Errorf("sendgrid api key must be provided in production")
	}
	return nil
}
