package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
)

// readDotEnv reads the dotenv file at path into a map with upper-cased keys.
//
// Keys written in lower case (the historical format of the file, e.g.
// "coreapi_server") are accepted; when both spellings of a key are present
// the upper-case one wins. A missing file yields an empty map.
func readDotEnv(path string) (map[string]string, error) {
	raw, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading dotenv file %s: %w", path, err)
	}

	vars := make(map[string]string, len(raw))
	for k, v := range raw {
		upper := strings.ToUpper(k)
		if k != upper {
			if _, exact := raw[upper]; exact {
				continue
			}
		}
		vars[upper] = v
	}

	return vars, nil
}
