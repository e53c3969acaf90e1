package mail

import (
	"net/mail"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/venooo/dailybouquet/pkg/errors"
)

// Defaults applied before any file or environment is read.
const (
	DefaultSMTPHost = "smtp.gmail.com"
	DefaultSMTPPort = 587
	DefaultFromName = "Bouquet Bot"
	DefaultTimeZone = "America/Chicago"
	DefaultSendHour = 8
	DefaultWidth    = 800
)

// Config holds the settings of the daily email.
type Config struct {
	SMTPHost     string `toml:"smtp_host" envconfig:"SMTP_HOST"`
	SMTPPort     int    `toml:"smtp_port" envconfig:"SMTP_PORT"`
	SMTPUser     string `toml:"smtp_user" envconfig:"SMTP_USER"`
	SMTPPassword string `toml:"smtp_app_password" envconfig:"SMTP_APP_PASSWORD"`
	To           string `toml:"to_email" envconfig:"TO_EMAIL"`
	FromName     string `toml:"from_name" envconfig:"FROM_NAME"`
	SiteURL      string `toml:"site_url" envconfig:"SITE_URL"`
	TimeZone     string `toml:"timezone" envconfig:"BOUQUET_TIMEZONE"`
	SendHour     int    `toml:"send_hour" envconfig:"BOUQUET_SEND_HOUR"`
	Width        int    `toml:"png_width" envconfig:"BOUQUET_PNG_WIDTH"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		SMTPHost: DefaultSMTPHost,
		SMTPPort: DefaultSMTPPort,
		FromName: DefaultFromName,
		TimeZone: DefaultTimeZone,
		SendHour: DefaultSendHour,
		Width:    DefaultWidth,
	}
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/bouquet/config.toml, falling
// back to the OS user config directory.
func DefaultConfigPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "bouquet", "config.toml")
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "bouquet", "config.toml")
	}
	return filepath.Join(".config", "bouquet", "config.toml")
}

// Load reads configuration from path and ./.env. See [LoadFiles].
func Load(path string) (Config, error) {
	return LoadFiles(path, ".env")
}

// LoadFiles builds a Config from, in increasing precedence: the defaults,
// the TOML file at path, the dotenv file, and the process environment.
// Variables already present in the environment are not overwritten by the
// dotenv file. An empty path means [DefaultConfigPath]; a missing default
// file or dotenv file is skipped, a missing explicit path is an error.
// The result is not validated.
func LoadFiles(path, envFile string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
		}
	} else if explicit {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config file %s", path)
	}

	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load %s", envFile)
			}
		}
	}

	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read environment")
	}
	return cfg, nil
}

// Validate checks that cfg can be used to send mail.
func (c Config) Validate() error {
	if err := c.ValidateDraft(); err != nil {
		return err
	}
	if c.SMTPPassword == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "SMTP_APP_PASSWORD is required")
	}
	return nil
}

// ValidateDraft checks everything needed to compose a message. Credentials
// are not required, so a dry run works without them.
func (c Config) ValidateDraft() error {
	if c.SMTPHost == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "SMTP_HOST is required")
	}
	if c.SMTPPort <= 0 || c.SMTPPort > 65535 {
		return errors.New(errors.ErrCodeInvalidConfig, "SMTP_PORT %d out of range", c.SMTPPort)
	}
	if err := errors.ValidateEmail(c.SMTPUser); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "SMTP_USER")
	}
	if err := errors.ValidateEmail(c.To); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "TO_EMAIL")
	}
	if err := errors.ValidateURL(c.SiteURL); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "SITE_URL")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.SendHour < 0 || c.SendHour > 23 {
		return errors.New(errors.ErrCodeInvalidConfig, "BOUQUET_SEND_HOUR must be 0-23, got %d", c.SendHour)
	}
	if c.Width <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "BOUQUET_PNG_WIDTH must be positive, got %d", c.Width)
	}
	return nil
}

// Location resolves TimeZone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "unknown time zone %q", c.TimeZone)
	}
	return loc, nil
}

// From formats the sender as `"Name" <user>`.
func (c Config) From() string {
	return (&mail.Address{Name: c.FromName, Address: c.SMTPUser}).String()
}
