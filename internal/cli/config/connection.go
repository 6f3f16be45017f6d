package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// Connection defines how to reach and authenticate to the block storage service API.
type Connection struct {
	// Endpoint is the base URL of the volume service including the API version and project,
	// e.g. https://volume.example.com:8776/v3/0c2eba2c5af04d3f9e9d0d410b371fde.
	Endpoint string `yaml:"endpoint"`
	Token    string `yaml:"token,omitempty"`
	// APIVersion is an optional volume API microversion, e.g. "3.10".
	APIVersion string        `yaml:"api_version,omitempty"`
	CAFile     string        `yaml:"ca_file,omitempty"`
	CertFile   string        `yaml:"cert_file,omitempty"`
	KeyFile    string        `yaml:"key_file,omitempty"`
	Insecure   bool          `yaml:"insecure,omitempty"`
	Timeout    time.Duration `yaml:"timeout,omitempty"`
}

func (c Connection) String() string {
	if c.Endpoint == "" {
		return "unknown endpoint"
	}
	return c.Endpoint
}

func (c *Connection) Validate() error {
	if c.Endpoint == "" {
		return errors.New("endpoint is required")
	}
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid endpoint URL '%s': scheme must be http or https", c.Endpoint)
	}
	if (c.CertFile == "") != (c.KeyFile == "") {
		return errors.New("cert_file and key_file must be specified together")
	}
	if c.Timeout < 0 {
		return errors.New("timeout must not be negative")
	}
	return nil
}

// Merge returns a copy of the connection with the non-empty fields of override applied on top.
func (c Connection) Merge(override Connection) Connection {
	merged := c
	if override.Endpoint != "" {
		merged.Endpoint = override.Endpoint
	}
	if override.Token != "" {
		merged.Token = override.Token
	}
	if override.APIVersion != "" {
		merged.APIVersion = override.APIVersion
	}
	if override.CAFile != "" {
		merged.CAFile = override.CAFile
	}
	if override.CertFile != "" {
		merged.CertFile = override.CertFile
	}
	if override.KeyFile != "" {
		merged.KeyFile = override.KeyFile
	}
	if override.Insecure {
		merged.Insecure = true
	}
	if override.Timeout != 0 {
		merged.Timeout = override.Timeout
	}
	return merged
}
