package config

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/imbecility/mp3-submit/pkg/models"
)

// Config holds everything the binary needs to reach the conversion service
// and, optionally, serve the web UI.
type Config struct {
	// Endpoint is the full submit URL of the conversion service.
	Endpoint string
	// TimeoutSec bounds each request; 0 means no deadline.
	TimeoutSec int
	// Insecure skips TLS verification when talking to the service.
	Insecure bool
	Debug    bool
	JSONLogs bool

	// VideoURL is submitted once in CLI mode.
	VideoURL string

	APIMode bool
	APIPort int
	// ServiceBase prefixes download links rendered by the web UI.
	// Defaults to the scheme and host of Endpoint.
	ServiceBase string
}

func Default() Config {
	return Config{
		Endpoint: models.DefaultServiceEndpoint,
		APIPort:  8090,
	}
}

// Parse fills a Config from command-line arguments, then applies
// environment overrides.
func Parse(args []string) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet("convert-submit", flag.ContinueOnError)
	fs.StringVar(&cfg.VideoURL, "url", "", "Video URL to submit for mp3 conversion")
	fs.StringVar(&cfg.Endpoint, "endpoint", cfg.Endpoint, "Submit endpoint of the conversion service")
	fs.IntVar(&cfg.TimeoutSec, "timeout", cfg.TimeoutSec, "Request timeout in seconds (0 = none)")
	fs.BoolVar(&cfg.Insecure, "insecure", false, "Skip TLS certificate verification")
	fs.BoolVar(&cfg.Debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&cfg.JSONLogs, "json", false, "Log as JSON")
	fs.BoolVar(&cfg.APIMode, "api", false, "Serve the web UI instead of submitting once")
	fs.IntVar(&cfg.APIPort, "port", cfg.APIPort, "Port for the web UI")
	fs.StringVar(&cfg.ServiceBase, "service", "", "Base URL for download links (defaults to the endpoint host)")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}

	if cfg.ServiceBase == "" {
		if u, err := url.Parse(cfg.Endpoint); err == nil && u.Host != "" {
			cfg.ServiceBase = u.Scheme + "://" + u.Host
		}
	}

	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("CONVERT_ENDPOINT"); v != "" {
		c.Endpoint = v
	}
	if v := os.Getenv("CONVERT_TIMEOUT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CONVERT_TIMEOUT: %w", err)
		}
		c.TimeoutSec = n
	}
	if v := os.Getenv("CONVERT_DEBUG"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("CONVERT_DEBUG: %w", err)
		}
		c.Debug = b
	}
	return nil
}

func (c Config) Validate() error {
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("endpoint must be an absolute http(s) URL, got %q", c.Endpoint)
	}
	if c.TimeoutSec < 0 {
		return errors.New("timeout must not be negative")
	}
	if c.APIMode && (c.APIPort <= 0 || c.APIPort > 65535) {
		return fmt.Errorf("invalid port %d", c.APIPort)
	}
	return nil
}
