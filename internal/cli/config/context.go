package config

// Context is a named set of settings for connecting to a block storage service.
type Context struct {
	Name       string `yaml:"-"`
	Connection `yaml:",inline"`
}
