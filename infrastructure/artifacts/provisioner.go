// Package artifacts acquires the model files the classifier needs before the
// API starts serving. Provisioning failures are unrecoverable: the caller is
// expected to log fatal and never open the listener.
package artifacts

import (
	"archive/tar"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
)

const archiveName = "model-release.tar.gz"

// ErrSourceURLRequired means the model files are absent and no MODEL_URL was
// configured, so there is nothing to download from.
var ErrSourceURLRequired = errors.New("model files are absent and no source URL is configured")

// Provisioner fetches and unpacks the model archive into Dir unless the
// required files are already present.
type Provisioner struct {
	Dir              string
	ModelFile        string
	PreprocessorFile string
	SourceURL        string

	// Client is used for the archive download. Defaults to a client with a
	// generous timeout; there is no retry on failure.
	Client *http.Client
}

func New(dir, modelFile, preprocessorFile, sourceURL string) *Provisioner {
	return &Provisioner{
		Dir:              dir,
		ModelFile:        modelFile,
		PreprocessorFile: preprocessorFile,
		SourceURL:        sourceURL,
		Client:           &http.Client{Timeout: 5 * time.Minute},
	}
}

// Ensure guarantees both model files exist under Dir when it returns nil.
// Fast path: files already on disk, no network call. Cold path: download the
// archive to a temp path inside Dir, unpack, clean up, re-verify. Idempotent
// either way.
func (p *Provisioner) Ensure() error {
	if err := os.MkdirAll(p.Dir, 0755); err != nil {
		return fmt.Errorf("create model dir %s: %w", p.Dir, err)
	}

	if fileExists(p.ModelFile) && fileExists(p.PreprocessorFile) {
		logrus.Infof("[ARTIFACTS] Model files found in %s, skipping download", p.Dir)
		return nil
	}

	logrus.Info("[ARTIFACTS] Model files not found locally")

	if p.SourceURL == "" {
		return ErrSourceURLRequired
	}

	tmpPath := filepath.Join(p.Dir, archiveName)
	size, err := p.download(tmpPath)
	if err != nil {
		return fmt.Errorf("download model archive: %w", err)
	}
	logrus.Infof("[ARTIFACTS] Download complete (%s), extracting...", humanize.Bytes(uint64(size)))

	unpackErr := untarGz(tmpPath, p.Dir)

	// Best-effort cleanup of the temp archive regardless of unpack outcome.
	if rmErr := os.Remove(tmpPath); rmErr != nil {
		logrus.Warnf("[ARTIFACTS] Failed to remove temp archive: %v", rmErr)
	}

	if unpackErr != nil {
		return fmt.Errorf("extract model archive: %w", unpackErr)
	}

	if !fileExists(p.ModelFile) || !fileExists(p.PreprocessorFile) {
		return fmt.Errorf("expected model files not found in %s after extraction", p.Dir)
	}

	logrus.Infof("[ARTIFACTS] Extraction complete, model files are in %s", p.Dir)
	return nil
}

func (p *Provisioner) download(dest string) (int64, error) {
	client := p.Client
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Minute}
	}

	logrus.Infof("[ARTIFACTS] Downloading model from %s...", p.SourceURL)

	resp, err := client.Get(p.SourceURL)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status %s from %s", resp.Status, p.SourceURL)
	}

	out, err := os.Create(dest)
	if err != nil {
		return 0, err
	}
	defer out.Close()

	n, err := io.Copy(out, resp.Body)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// untarGz unpacks a gzip-compressed tarball into dir. Entries escaping dir
// are rejected.
func untarGz(archivePath, dir string) error {
	f, err := os.Open(archivePath)
	if err != nil {
		return err
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return err
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		target, err := sanitizePath(dir, hdr.Name)
		if err != nil {
			return err
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0755); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return err
			}
			out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
			if err != nil {
				return err
			}
			if _, err := io.Copy(out, tr); err != nil {
				out.Close()
				return err
			}
			if err := out.Close(); err != nil {
				return err
			}
		default:
			// symlinks etc. are not expected in a model release
		}
	}
}

func sanitizePath(dir, name string) (string, error) {
	target := filepath.Join(dir, filepath.Clean(name))
	if !strings.HasPrefix(target, filepath.Clean(dir)+string(os.PathSeparator)) {
		return "", fmt.Errorf("archive entry %q escapes target directory", name)
	}
	return target, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
