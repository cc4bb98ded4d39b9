package main

import (
	"context"
	"io"
)

// Dependencies holds the I/O handles commands run against.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Input  string `arg:"" optional:"" help:"Input HTML file"`
	Output string `short:"o" help:"Output file (single file mode)"`

	InputDir  string `name:"input-dir" help:"Input directory"`
	OutputDir string `name:"output-dir" help:"Output directory"`

	KeepAttributes     bool     `name:"keep-attributes" help:"Keep tag attributes"`
	ExcludeTags        []string `name:"exclude-tags" help:"Exclude tags from removal (comma-separated)"`
	KeepTags           []string `name:"keep-tags" help:"Keep only these tags (comma-separated)"`
	PreserveWhitespace bool     `name:"preserve-whitespace" help:"Preserve whitespace"`
	Config             string   `help:"JSON configuration file, applied over flags"`

	Extract    string `enum:"none,trafilatura,readability" default:"none" help:"Extract main content before optimizing (none, trafilatura, readability)"`
	Markdown   bool   `help:"Write Markdown instead of HTML"`
	Structural bool   `help:"Always use the tree-based engine"`

	Concurrency   int  `short:"c" default:"4" help:"Files processed in parallel in directory mode"`
	SkipUnchanged bool `name:"skip-unchanged" help:"Do not rewrite outputs whose content is unchanged"`

	Verbose bool `short:"v" help:"Log per-file statistics to stderr"`
	Version bool `help:"Print version and exit"`
}
