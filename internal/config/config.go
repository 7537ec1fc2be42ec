package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"sketchpad/internal/tool"
)

// FileName is looked up in the user's home directory.
const FileName = ".sketchpadrc"

type Config struct {
	SaveDirectory string
	Confirmations bool
	CanvasWidth   int
	CanvasHeight  int
	CellPixels    int
	Tool          tool.Kind
	Caption       string
}

func Default() *Config {
	return &Config{
		SaveDirectory: "",
		Confirmations: true,
		CanvasWidth:   256,
		CanvasHeight:  256,
		CellPixels:    4,
		Tool:          tool.Thin,
	}
}

// Load reads ~/.sketchpadrc. A missing or unreadable file yields the
// defaults.
func Load() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Default()
	}
	return LoadFile(filepath.Join(homeDir, FileName), homeDir)
}

// LoadFile reads path on top of the defaults. homeDir is used to expand a
// leading ~ in directory values.
func LoadFile(path, homeDir string) *Config {
	config := Default()

	file, err := os.Open(path)
	if err != nil {
		return config
	}
	defer file.Close()

	Parse(file, homeDir, config)
	return config
}

// Parse applies key=value lines from r to config. Blank lines, # comments,
// unknown keys and unparsable values are skipped.
func Parse(r io.Reader, homeDir string, config *Config) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "savedirectory", "save_directory", "savedir":
			if strings.HasPrefix(value, "~") && homeDir != "" {
				value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
			}
			if !filepath.IsAbs(value) {
				if absPath, err := filepath.Abs(value); err == nil {
					value = absPath
				}
			}
			config.SaveDirectory = value
		case "confirmations", "confirm":
			config.Confirmations = strings.ToLower(value) == "true"
		case "canvaswidth", "canvas_width", "width":
			if n, ok := positive(value); ok {
				config.CanvasWidth = n
			}
		case "canvasheight", "canvas_height", "height":
			if n, ok := positive(value); ok {
				config.CanvasHeight = n
			}
		case "cellpixels", "cell_pixels":
			if n, ok := positive(value); ok {
				config.CellPixels = n
			}
		case "tool":
			if k, ok := tool.ParseKind(value); ok {
				config.Tool = k
			}
		case "caption":
			config.Caption = value
		}
	}
}

func positive(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// SavePath joins filename onto SaveDirectory, creating the directory.
func (c *Config) SavePath(filename string) (string, error) {
	if c.SaveDirectory == "" {
		return filename, nil
	}
	if err := os.MkdirAll(c.SaveDirectory, 0755); err != nil {
		return "", fmt.Errorf("create save directory: %w", err)
	}
	return filepath.Join(c.SaveDirectory, filename), nil
}
