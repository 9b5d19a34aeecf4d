// Package publish copies a finished results tree into the public web
// directory, guarding a previous publication against overwrite.
package publish

import (
	"crypto/rand"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/gwastro/pygrb-results-page/constants"
)

// Publisher replicates an output directory to the public web path. The
// collision warning goes to out, which is os.Stdout in production.
type Publisher struct {
	logger logrus.FieldLogger
	out    io.Writer
}

// NewPublisher creates a publisher writing collision warnings to stdout.
func NewPublisher(logger logrus.FieldLogger) *Publisher {
	return &Publisher{
		logger: logger.WithField("component", "publisher"),
		out:    os.Stdout,
	}
}

// SetOutput redirects the collision warning stream, for tests.
func (p *Publisher) SetOutput(w io.Writer) {
	p.out = w
}

// TargetName computes the canonical published directory name for htmlPath:
// its basename suffixed with the box state, under the same parent.
func TargetName(htmlPath string, openBox bool) string {
	suffix := constants.ClosedBoxSuffix
	if openBox {
		suffix = constants.OpenBoxSuffix
	}

	return filepath.Join(filepath.Dir(htmlPath), filepath.Base(htmlPath)+suffix)
}

// Publish copies outDir to the canonical target for htmlPath. If the
// canonical target already exists it is left untouched: a warning names
// both paths and a random suffix picks a fresh destination. Exactly one
// suffix attempt is made; the recursive copy refuses any destination that
// exists, so a second collision is a fatal error rather than data loss.
// Returns the path actually published to.
func (p *Publisher) Publish(outDir, htmlPath string, openBox bool) (string, error) {
	target := TargetName(htmlPath, openBox)

	if _, err := os.Stat(target); err == nil {
		suffix, err := randomSuffix(constants.PublishSuffixLength)
		if err != nil {
			return "", err
		}

		fresh := target + "_" + suffix
		fmt.Fprintf(p.out, "WARNING: %s already exists, publishing to %s instead\n", target, fresh)
		target = fresh
	}

	if err := copyTree(outDir, target); err != nil {
		return "", err
	}

	if err := p.copyAssets(filepath.Dir(filepath.Clean(outDir)), target); err != nil {
		return "", err
	}

	p.logger.WithField("path", target).Info("Results page published")

	return target, nil
}

// copyAssets carries the stylesheet and toggle script from the directory
// above the output tree into the published tree, overwriting stale copies.
func (p *Publisher) copyAssets(assetDir, target string) error {
	for _, name := range []string{constants.StylesheetFile, constants.ToggleScriptFile} {
		data, err := os.ReadFile(filepath.Join(assetDir, name))
		if err != nil {
			return fmt.Errorf("failed to read asset %s: %w", name, err)
		}

		dst := filepath.Join(target, name)
		if err := os.WriteFile(dst, data, constants.DefaultFilePermissions); err != nil {
			return fmt.Errorf("failed to write asset %s: %w", dst, err)
		}
	}

	return nil
}

// copyTree recursively copies src to dst. Creating dst must succeed, which
// makes the copy refuse a destination that already exists.
func copyTree(src, dst string) error {
	if err := os.Mkdir(dst, constants.DefaultDirPermissions); err != nil {
		return fmt.Errorf("failed to create publish directory %s: %w", dst, err)
	}

	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}

		if rel == "." {
			return nil
		}

		target := filepath.Join(dst, rel)

		if d.IsDir() {
			return os.Mkdir(target, constants.DefaultDirPermissions)
		}

		return copyFile(path, target)
	})
	if err != nil {
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}

	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, constants.DefaultFilePermissions)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()

		return err
	}

	return out.Close()
}

// randomSuffix draws n characters from the publish suffix alphabet.
func randomSuffix(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate publish suffix: %w", err)
	}

	alphabet := constants.PublishSuffixAlphabet
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}

	return string(buf), nil
}
