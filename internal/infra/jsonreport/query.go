package jsonreport

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/aalvaropc/slope/internal/domain"
)

// Query evaluates a JSONPath expression against a JSON document and returns
// the value as a string. null and empty results are reported as not found.
func Query(body []byte, expr string) (string, error) {
	e := strings.TrimSpace(expr)
	if e == "" {
		return "", queryError(domain.KindInvalidInput, fmt.Errorf("empty jsonpath expression: %w", domain.ErrInvalidInput))
	}

	doc, err := parseJSON(body)
	if err != nil {
		return "", queryError(domain.KindInvalidInput, fmt.Errorf("document is not valid JSON: %w", err))
	}

	val, err := jsonpath.Get(e, doc)
	if err != nil {
		return "", queryError(domain.KindInvalidInput, fmt.Errorf("%s: jsonpath error: %w", e, err))
	}
	if isEmptyValue(val) {
		return "", queryError(domain.KindNotFound, fmt.Errorf("%s: no value found: %w", e, domain.ErrNotFound))
	}

	s, err := toString(val)
	if err != nil {
		return "", queryError(domain.KindExecution, fmt.Errorf("%s: cannot convert value to string: %w", e, err))
	}
	return s, nil
}

// QueryDocument marshals doc and runs Query on it.
func QueryDocument(doc Document, expr string) (string, error) {
	b, err := Marshal(doc)
	if err != nil {
		return "", queryError(domain.KindExecution, err)
	}
	return Query(b, expr)
}

func queryError(kind domain.ErrorKind, err error) error {
	return &domain.OpError{Op: "jsonreport.query", Kind: kind, Err: err}
}

func parseJSON(body []byte) (any, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}

func toString(v any) (string, error) {
	// jsonpath wildcards return a slice; a single hit is unwrapped
	if arr, ok := v.([]any); ok {
		if len(arr) == 0 {
			return "", fmt.Errorf("empty array")
		}
		if len(arr) == 1 {
			return toString(arr[0])
		}
		b, err := json.Marshal(arr)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	switch t := v.(type) {
	case string:
		return t, nil
	case float64, bool:
		return fmt.Sprint(t), nil
	case map[string]any:
		b, err := json.Marshal(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return fmt.Sprint(t), nil
	}
}
