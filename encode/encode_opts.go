package encode

import "fmt"

// Format selects the output syntax.
type Format int

const (
	YAML Format = iota
	JSON
)

func (f Format) String() string {
	if f == JSON {
		return "json"
	}
	return "yaml"
}

// ParseFormat accepts "yaml"/"y" and "json"/"j".
func ParseFormat(s string) (Format, error) {
	switch s {
	case "yaml", "y":
		return YAML, nil
	case "json", "j":
		return JSON, nil
	}
	return YAML, fmt.Errorf("unknown format %q", s)
}

type config struct {
	format     Format
	attrPrefix string
	colors     *Colors
}

type Option func(*config)

// EncodeFormat sets the output format (YAML by default).
func EncodeFormat(f Format) Option {
	return func(c *config) { c.format = f }
}

// AttrPrefix sets the key prefix used for attribute entries.
func AttrPrefix(p string) Option {
	return func(c *config) { c.attrPrefix = p }
}

// EncodeColors enables colorized output for Dump.
func EncodeColors(cl *Colors) Option {
	return func(c *config) { c.colors = cl }
}

func newConfig(opts []Option) *config {
	cfg := &config{attrPrefix: "@"}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
