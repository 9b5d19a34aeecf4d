package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/gwastro/pygrb-results-page/constants"
)

// FileManager performs the file operations the assembler needs while
// building a page: saving outputs and pulling referenced artifacts into the
// output directory.
type FileManager struct {
	logger logrus.FieldLogger
}

// NewFileManager creates a new file manager.
func NewFileManager(logger logrus.FieldLogger) *FileManager {
	return &FileManager{
		logger: logger.WithField("component", "file_manager"),
	}
}

// SaveHTML saves HTML content to the specified filename.
func (fm *FileManager) SaveHTML(filename, content string) error {
	if err := os.WriteFile(filename, []byte(content), constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write HTML file %s: %w", filename, err)
	}

	fm.logger.WithField("filename", filename).Debug("HTML file saved")

	return nil
}

// SaveJSON saves data as indented JSON to the specified filename.
func (fm *FileManager) SaveJSON(filename string, data interface{}) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	if err := os.WriteFile(filename, jsonData, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write JSON file %s: %w", filename, err)
	}

	fm.logger.WithField("filename", filename).Debug("JSON file saved")

	return nil
}

// FileExists checks if a file exists at the given path.
func (fm *FileManager) FileExists(filename string) bool {
	_, err := os.Stat(filename)

	return !os.IsNotExist(err)
}

// CopyFile copies src to dst, truncating any existing destination.
func (fm *FileManager) CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, constants.DefaultFilePermissions)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()

		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", dst, err)
	}

	fm.logger.WithFields(logrus.Fields{"src": src, "dst": dst}).Debug("File copied")

	return nil
}

// SameContent reports whether two paths refer to the same file or hold
// identical bytes. A missing second path is simply "not the same".
func (fm *FileManager) SameContent(a, b string) (bool, error) {
	infoA, err := os.Stat(a)
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", a, err)
	}

	infoB, err := os.Stat(b)
	if os.IsNotExist(err) {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", b, err)
	}

	if os.SameFile(infoA, infoB) {
		return true, nil
	}

	if infoA.Size() != infoB.Size() {
		return false, nil
	}

	dataA, err := os.ReadFile(a)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", a, err)
	}

	dataB, err := os.ReadFile(b)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", b, err)
	}

	return bytes.Equal(dataA, dataB), nil
}
