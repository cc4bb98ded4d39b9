package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/fwojciec/htmlrag"
)

// loadConfig reads optimization overrides from a JSON file.
func loadConfig(path string) (*htmlrag.Overrides, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, htmlrag.Errorf(htmlrag.ENOTFOUND, "config file not found: %s", path)
	} else if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	return htmlrag.DecodeOverrides(f)
}
