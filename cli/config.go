package cli

import (
	"github.com/shibukawa/tablediff"
)

// Context represents the global context for commands
type Context struct {
	Config  string
	Verbose bool
	Quiet   bool
}

// LoadConfig loads configuration from the specified file
func LoadConfig(configPath string) (*tablediff.Config, error) {
	return tablediff.LoadConfig(configPath)
}
