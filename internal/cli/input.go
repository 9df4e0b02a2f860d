package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"autocomplete-srv/internal/model"

	"gopkg.in/yaml.v3"
)

// ValidInputFormats defines the accepted request encodings.
var ValidInputFormats = []string{"json", "yaml"}

// openInput returns stdin for "" and "-", the named file otherwise.
func openInput(stdin io.Reader, arg string) (io.ReadCloser, error) {
	if arg == "" || arg == "-" {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(arg)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}

// inputFormat picks the decoder: an explicit flag wins, then the file
// extension, then JSON.
func inputFormat(flag, arg string) (string, error) {
	if flag != "" {
		for _, f := range ValidInputFormats {
			if f == flag {
				return flag, nil
			}
		}
		return "", fmt.Errorf("invalid input format %q: must be one of %v", flag, ValidInputFormats)
	}
	switch strings.ToLower(filepath.Ext(arg)) {
	case ".yaml", ".yml":
		return "yaml", nil
	}
	return "json", nil
}

func decodeRequest(data []byte, format string) (model.CleanRequest, error) {
	var clean model.CleanRequest
	var err error
	if format == "yaml" {
		err = yaml.Unmarshal(data, &clean)
	} else {
		err = json.Unmarshal(data, &clean)
	}
	if err != nil {
		return model.CleanRequest{}, fmt.Errorf("decode %s request: %w", format, err)
	}
	return clean, nil
}
