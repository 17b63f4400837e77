package treeview

import (
	"os"

	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config holds settings for console output.
type Config struct {
	LineWidth int            // labels are truncated to fit into lines of this width
	Context   *uax11.Context // context for determining display widths
	Plain     bool           // no colors; node colors are printed as "R:" or "B:" prefixes
}

// ConfigFromTerminal is a simple helper for creating a Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly. Output to anything
// else than a terminal will be plain.
func ConfigFromTerminal() *Config {
	config := &Config{
		LineWidth: 80,
		Context:   uax11.ContextFromEnvironment(),
	}
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		config.Plain = true
		return config
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		tracer().Infof("treeview: cannot read terminal size: %v", err)
	} else if w > 10 {
		config.LineWidth = w
	} else {
		config.LineWidth = 10
	}
	tracer().P("format", "console").Debugf("setting line width to %d en", config.LineWidth)
	return config
}

func (config *Config) normalized() *Config {
	c := Config{}
	if config != nil {
		c = *config
	}
	if c.LineWidth <= 0 {
		c.LineWidth = 80
	}
	if c.Context == nil {
		c.Context = uax11.LatinContext
	}
	return &c
}
