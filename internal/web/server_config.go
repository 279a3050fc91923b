package web

// ServerConfig contains settings for running the preview server.
type ServerConfig struct {
	ListenAddr string
	DevMode    bool
	// MaxSize caps on-demand renders; zero means DefaultMaxSize.
	MaxSize int
}

const (
	DefaultListenAddr = ":8080"
	DefaultMaxSize    = 1024
)

func (c ServerConfig) withDefaults() ServerConfig {
	if c.ListenAddr == "" {
		c.ListenAddr = DefaultListenAddr
	}
	if c.MaxSize <= 0 {
		c.MaxSize = DefaultMaxSize
	}
	return c
}
