package parse

type config struct {
	rootName   string
	attrPrefix string
}

type Option func(*config)

// RootName sets the name given to the document's root node.
func RootName(name string) Option {
	return func(c *config) { c.rootName = name }
}

// AttrPrefix sets the key prefix marking attribute entries.
func AttrPrefix(p string) Option {
	return func(c *config) { c.attrPrefix = p }
}

func newConfig(opts []Option) *config {
	cfg := &config{
		rootName:   DefaultRootName,
		attrPrefix: DefaultAttrPrefix,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
