package cli

import (
	"github.com/contextpack/contextpack/pkg/assembly"
	"github.com/contextpack/contextpack/pkg/config"
)

// optionsFromSettings seeds assembly options from the settings file.
// Fields the file leaves unset keep their defaults; flags override on
// top of this in each command.
func optionsFromSettings(settings config.Settings) assembly.Options {
	opts := assembly.DefaultOptions()
	if settings.Strategy != "" {
		opts.Strategy = settings.Strategy
	}
	if settings.MaxTokens > 0 {
		opts.MaxTokens = settings.MaxTokens
	}
	if settings.Overhead > 0 {
		opts.Overhead = settings.Overhead
	}
	if settings.IncludeTitles != nil {
		opts.IncludeTitles = *settings.IncludeTitles
	}
	if settings.Separator != "" {
		opts.Separator = settings.Separator
	}
	return opts
}
