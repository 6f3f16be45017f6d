package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

var ErrContextNotFound = errors.New("context not found")

type Config struct {
	CurrentContext string              `yaml:"current_context"`
	Contexts       map[string]*Context `yaml:"contexts"`

	// path is the file path config is read from.
	path string
}

// NewFromFile reads the config from the file at path. A missing file results in an empty config that will be
// created at path on Save.
func NewFromFile(path string) (*Config, error) {
	_, err := os.Stat(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("check file permissions '%s': %w", path, err)
	}
	c := &Config{
		Contexts: map[string]*Context{},
		path:     path,
	}
	if os.IsNotExist(err) {
		return c, nil
	}

	if err = c.Read(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Path() string {
	return c.path
}

func (c *Config) Read() error {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return fmt.Errorf("read config file '%s': %w", c.path, err)
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file '%s': %s", c.path, yaml.FormatError(err, false, true))
	}
	if c.Contexts == nil {
		c.Contexts = map[string]*Context{}
	}
	for name, ctx := range c.Contexts {
		if ctx == nil {
			return fmt.Errorf("parse config file '%s': context '%s' is empty", c.path, name)
		}
		ctx.Name = name
	}

	return nil
}

func (c *Config) Save() error {
	dir, _ := filepath.Split(c.path)
	if dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create config directory '%s': %w", dir, err)
		}
	}

	// The config may contain auth tokens so it's only readable by the owner.
	f, err := os.OpenFile(c.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("write config file '%s': %w", c.path, err)
	}

	encoder := yaml.NewEncoder(f, yaml.Indent(2), yaml.IndentSequence(true))
	if err = encoder.Encode(c); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode config file '%s': %w", c.path, err)
	}
	return f.Close()
}

// Context returns the context with the given name or the current context if name is empty.
func (c *Config) Context(name string) (*Context, error) {
	if name == "" {
		name = c.CurrentContext
	}
	if name == "" {
		return nil, fmt.Errorf("current context is not set in config '%s'", c.path)
	}
	ctx, ok := c.Contexts[name]
	if !ok {
		return nil, fmt.Errorf("context '%s': %w", name, ErrContextNotFound)
	}
	ctx.Name = name
	return ctx, nil
}

// SetContext adds or replaces a context. The first added context becomes the current one.
func (c *Config) SetContext(ctx *Context) error {
	if ctx.Name == "" {
		return errors.New("context name must not be empty")
	}
	if err := ctx.Validate(); err != nil {
		return fmt.Errorf("invalid context '%s': %w", ctx.Name, err)
	}
	c.Contexts[ctx.Name] = ctx
	if c.CurrentContext == "" {
		c.CurrentContext = ctx.Name
	}
	return nil
}

// RemoveContext removes a context and unsets the current context if it was the removed one.
func (c *Config) RemoveContext(name string) error {
	if _, ok := c.Contexts[name]; !ok {
		return fmt.Errorf("context '%s': %w", name, ErrContextNotFound)
	}
	delete(c.Contexts, name)
	if c.CurrentContext == name {
		c.CurrentContext = ""
	}
	return nil
}
