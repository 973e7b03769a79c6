package desktop

import "time"

type Config struct {
	// Suggestions shown next to the strength meter
	MaxSuggestions int
	// How long Generate may take, delay included
	GenerateTimeout time.Duration
	// Zero waits for the clipboard indefinitely
	CopyTimeout time.Duration
}

func NewDefaultConfig() *Config {
	return &Config{
		MaxSuggestions:  3,
		GenerateTimeout: 5 * time.Second,
		CopyTimeout:     time.Second,
	}
}
