package htmlrag

import "context"

// FileResult describes one transformed file.
type FileResult struct {
	InputPath   string
	OutputPath  string
	InputBytes  int
	OutputBytes int

	// Hash is the xxhash of the written content, in hex.
	Hash string

	// Unchanged is set when the output already held identical content
	// and was not rewritten.
	Unchanged bool
}

// FileProcessor applies a Transformer to files on disk.
type FileProcessor interface {
	// ProcessFile transforms inputPath into outputPath, creating parent
	// directories as needed. Returns ENOTFOUND if inputPath does not exist.
	ProcessFile(ctx context.Context, inputPath, outputPath string) (*FileResult, error)

	// ProcessDir mirrors inputDir into outputDir, transforming every
	// regular file with an .html extension and skipping everything else.
	// Returns ENOTFOUND if inputDir does not exist.
	ProcessDir(ctx context.Context, inputDir, outputDir string) ([]*FileResult, error)
}
