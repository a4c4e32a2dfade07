package client

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
)

// idArgument parses the first positional argument as a CoreAPI id.
func idArgument(c *cli.Context, name string) (int64, error) {
	raw := strings.TrimSpace(c.Args().First())
	if raw == "" {
		return 0, fmt.Errorf("%w: %s", ErrMissingArgument, name)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", ErrInvalidArgument, name, raw)
	}

	return id, nil
}

// parseFilters turns key=value pairs into a filter object. Values that are
// valid JSON (numbers, arrays, booleans, quoted strings) are decoded, anything
// else is kept as a plain string.
func parseFilters(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	filters := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: filter %q must look like key=value", ErrInvalidArgument, pair)
		}

		var decoded any
		if err := json.Unmarshal([]byte(value), &decoded); err == nil {
			filters[key] = decoded
			continue
		}
		filters[key] = value
	}

	return filters, nil
}
