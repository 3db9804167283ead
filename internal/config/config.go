package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Config holds all service settings, populated from command-line flags and
// environment variables.
type Config struct {
	County           string
	IntervalSeconds  int
	Refnum           string
	LocationContains string
	Verbose          bool

	SMTPServer    string
	SMTPPort      int
	SMTPUser      string
	SMTPPassword  string
	FromEmail     string
	ToEmail       string
	SubjectPrefix string

	Endpoint        string
	RequestTimeout  time.Duration
	HTTPAddr        string
	ShutdownTimeout time.Duration
	LogLevel        string
	LogFormat       string
}

// rawConfig defines the flag surface. go-flags fills it from argv and the
// environment; Load shapes it into a validated Config.
type rawConfig struct {
	County           string `long:"county" env:"COUNTY" required:"true" description:"County name, e.g. 'Mayo'"`
	Interval         int    `long:"interval" env:"INTERVAL" default:"60" description:"Polling interval in seconds"`
	Refnum           string `long:"refnum" env:"REFNUM" description:"Optional outage reference code to filter"`
	LocationContains string `long:"location-contains" env:"LOCATION_CONTAINS" description:"Filter outages whose location/description contains this text (case-insensitive), e.g. 'Ballina'"`
	Verbose          bool   `long:"verbose" env:"VERBOSE" description:"Print outage details on the initial fetch and when changes are detected"`

	SMTPServer    string `long:"smtp-server" env:"SMTP_SERVER" description:"SMTP host for email notifications"`
	SMTPPort      int    `long:"smtp-port" env:"SMTP_PORT" default:"587" description:"SMTP port"`
	SMTPUser      string `long:"smtp-user" env:"SMTP_USER" description:"SMTP username"`
	SMTPPassword  string `long:"smtp-password" env:"SMTP_PASSWORD" description:"SMTP password"`
	FromEmail     string `long:"from-email" env:"FROM_EMAIL" description:"Notification sender address"`
	ToEmail       string `long:"to-email" env:"TO_EMAIL" description:"Notification recipient address"`
	SubjectPrefix string `long:"subject-prefix" env:"SUBJECT_PREFIX" default:"[Water.ie]" description:"Email subject prefix"`

	Endpoint        string        `long:"endpoint" env:"ENDPOINT" description:"FeatureServer query URL override"`
	RequestTimeout  time.Duration `long:"request-timeout" env:"REQUEST_TIMEOUT" default:"15s" description:"HTTP timeout for feature queries"`
	HTTPAddr        string        `long:"http-addr" env:"HTTP_ADDR" description:"Bind address for health/metrics endpoints; empty disables them"`
	ShutdownTimeout time.Duration `long:"shutdown-timeout" env:"SHUTDOWN_TIMEOUT" default:"10s" description:"Graceful shutdown budget for the HTTP server"`
	LogLevel        string        `long:"log-level" env:"LOG_LEVEL" default:"info" description:"Log level: debug, info, warn, error"`
	LogFormat       string        `long:"log-format" env:"LOG_FORMAT" default:"text" description:"Log format: text or json"`
}

// Load parses the given arguments (plus the environment) into a validated
// Config. A help request returns (nil, nil) after go-flags prints usage.
func Load(args []string) (*Config, error) {
	var raw rawConfig

	parser := flags.NewParser(&raw, flags.Default)
	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return nil, nil
		}
		return nil, fmt.Errorf("parse configuration: %w", err)
	}

	cfg := &Config{
		County:           raw.County,
		IntervalSeconds:  raw.Interval,
		Refnum:           raw.Refnum,
		LocationContains: raw.LocationContains,
		Verbose:          raw.Verbose,

		SMTPServer:    raw.SMTPServer,
		SMTPPort:      raw.SMTPPort,
		SMTPUser:      raw.SMTPUser,
		SMTPPassword:  raw.SMTPPassword,
		FromEmail:     raw.FromEmail,
		ToEmail:       raw.ToEmail,
		SubjectPrefix: raw.SubjectPrefix,

		Endpoint:        raw.Endpoint,
		RequestTimeout:  raw.RequestTimeout,
		HTTPAddr:        raw.HTTPAddr,
		ShutdownTimeout: raw.ShutdownTimeout,
		LogLevel:        raw.LogLevel,
		LogFormat:       raw.LogFormat,
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.IntervalSeconds < 1 {
		return errors.New("interval must be at least 1 second")
	}
	if c.RequestTimeout <= 0 {
		return errors.New("request-timeout must be positive")
	}
	if c.SMTPPort < 1 || c.SMTPPort > 65535 {
		return fmt.Errorf("smtp-port %d outside 1-65535", c.SMTPPort)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}

// EmailEnabled reports whether every SMTP parameter needed to send
// notifications is set. A missing parameter silently disables email.
func (c *Config) EmailEnabled() bool {
	return c.SMTPServer != "" && c.SMTPUser != "" && c.SMTPPassword != "" &&
		c.FromEmail != "" && c.ToEmail != ""
}

// Interval returns the poll interval as a duration.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.IntervalSeconds) * time.Second
}
