package pipeline

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/stackview/pkg/errors"
	stackio "github.com/matzehuels/stackview/pkg/io"
	"github.com/matzehuels/stackview/pkg/stackup"
)

// readStackFile reads the stack source file and returns its raw bytes.
// The bytes feed both the parser and the content-addressed cache key.
func readStackFile(path string) ([]byte, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "stack file not found: %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read stack file")
	}
	return data, nil
}

// parseStack parses raw stack bytes, dispatching on the file extension.
func parseStack(path string, data []byte) (*stackup.Stack, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return stackio.ReadTOML(bytes.NewReader(data))
	case ".json":
		return stackio.ReadJSON(bytes.NewReader(data))
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat,
			"unsupported stack file extension: %s (use .toml or .json)", filepath.Ext(path))
	}
}
