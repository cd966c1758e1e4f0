package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/erazemk/ogled/internal/model"
)

// Transport errors. Both are expected, recoverable conditions on the
// report side; callers render a placeholder instead of failing.
var (
	ErrNoData      = errors.New("no report data")
	ErrInvalidData = errors.New("invalid report data")
)

// EncodeSnapshot serializes an inspection to the percent-encoded JSON
// form carried in the report URL's "d" parameter.
func EncodeSnapshot(insp model.Inspection) (string, error) {
	data, err := json.Marshal(insp)
	if err != nil {
		return "", fmt.Errorf("encoding snapshot: %w", err)
	}
	return url.QueryEscape(string(data)), nil
}

// DecodeSnapshot parses a snapshot from the "d" parameter value. It
// accepts the value either as raw JSON (query parsing already unescaped
// it) or still percent-encoded. An empty value yields ErrNoData and
// anything unparseable yields ErrInvalidData; neither is fatal.
func DecodeSnapshot(raw string) (model.Inspection, error) {
	var insp model.Inspection

	if strings.TrimSpace(raw) == "" {
		return insp, ErrNoData
	}

	if err := json.Unmarshal([]byte(raw), &insp); err == nil {
		return insp, nil
	}

	unescaped, err := url.QueryUnescape(raw)
	if err != nil {
		return insp, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	if err := json.Unmarshal([]byte(unescaped), &insp); err != nil {
		return insp, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	return insp, nil
}
