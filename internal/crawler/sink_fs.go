package crawler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// FileSystemSink writes one UTF-8 Markdown file per page under a root
// directory. It owns the name registry, so filenames are unique for the
// lifetime of the sink; files left over from earlier runs are overwritten.
type FileSystemSink struct {
	root     string
	registry *nameRegistry
	logger   *zap.Logger
}

// NewFileSystemSink creates root (and parents) if absent and returns a sink
// rooted there.
func NewFileSystemSink(root string, logger *zap.Logger) (*FileSystemSink, error) {
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", root, err)
	}
	return &FileSystemSink{
		root:     root,
		registry: newNameRegistry(),
		logger:   logger,
	}, nil
}

// Save claims the next free filename for baseName, writes body there, and
// returns the filename relative to the sink root. The body is written as-is,
// with no added frontmatter.
func (s *FileSystemSink) Save(ctx context.Context, baseName string, body []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("context canceled: %w", err)
	}
	filename := s.registry.Claim(baseName)
	target := filepath.Join(s.root, filename)
	if err := os.WriteFile(target, body, 0o600); err != nil {
		return "", fmt.Errorf("write markdown %s: %w", target, err)
	}
	s.logger.Debug("Wrote page", zap.String("file", target), zap.Int("bytes", len(body)))
	return filename, nil
}

// Root returns the sink's output directory.
func (s *FileSystemSink) Root() string {
	return s.root
}
