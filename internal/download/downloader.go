// Package download retrieves generated portfolio archives and saves them locally.
package download

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
)

// FileSuffix is appended to every saved archive name
const FileSuffix = "_portfolio.zip"

var whitespace = regexp.MustCompile(`\s+`)

// FileName derives the local archive name from the portfolio owner's name:
// whitespace runs become underscores and the fixed suffix is appended.
func FileName(base string) string {
	return whitespace.ReplaceAllString(base, "_") + FileSuffix
}

// Service is the artifact retrieval contract
type Service interface {
	DownloadPortfolio(ctx context.Context, artifactID string, w io.Writer) error
}

// MissingArtifactError indicates the downloader was invoked without a handle
// from a prior successful generation
type MissingArtifactError struct{}

func (e *MissingArtifactError) Error() string {
	return "no artifact handle: generate a portfolio first"
}

// Downloader exchanges an artifact handle for a saved archive file
type Downloader struct {
	svc Service
	dir string
}

// NewDownloader creates a downloader that saves archives under dir
func NewDownloader(svc Service, dir string) *Downloader {
	return &Downloader{svc: svc, dir: dir}
}

// Download fetches the artifact and writes it to disk, returning the saved
// path. The payload is buffered in memory and only written once fully
// received, so a failed fetch never leaves a partial file; the buffer is
// discarded when Download returns. May be retried without limit.
func (d *Downloader) Download(ctx context.Context, artifactID, nameBase string) (string, error) {
	if artifactID == "" {
		return "", &MissingArtifactError{}
	}

	var buf bytes.Buffer
	if err := d.svc.DownloadPortfolio(ctx, artifactID, &buf); err != nil {
		return "", err
	}

	path := filepath.Join(d.dir, FileName(nameBase))
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("failed to save archive: %w", err)
	}
	return path, nil
}
