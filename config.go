package main

import (
	"flag"
	"fmt"

	"sketchpad/internal/config"
	"sketchpad/internal/tool"
)

// overrides are command-line values that win over ~/.sketchpadrc. Zero
// values mean "not given".
type overrides struct {
	configPath string
	width      int
	height     int
	tool       string
}

func parseFlags(fs *flag.FlagSet, args []string) (overrides, error) {
	var o overrides
	fs.StringVar(&o.configPath, "config", "", "config file (default ~/"+config.FileName+")")
	fs.IntVar(&o.width, "width", 0, "canvas width in pixels")
	fs.IntVar(&o.height, "height", 0, "canvas height in pixels")
	fs.StringVar(&o.tool, "tool", "", "initial marker: thin or thick")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	return o, nil
}

func (o overrides) load(homeDir string) (*config.Config, error) {
	var cfg *config.Config
	if o.configPath != "" {
		cfg = config.LoadFile(o.configPath, homeDir)
	} else {
		cfg = config.Load()
	}

	if o.width > 0 {
		cfg.CanvasWidth = o.width
	}
	if o.height > 0 {
		cfg.CanvasHeight = o.height
	}
	if o.tool != "" {
		k, ok := tool.ParseKind(o.tool)
		if !ok {
			return nil, fmt.Errorf("unknown tool %q", o.tool)
		}
		cfg.Tool = k
	}
	return cfg, nil
}
