package scraper

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DecodeJSON decodes raw JSON text into the dynamic representation Nav
// walks.
func DecodeJSON(raw string) (any, error) {
	var doc any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, &ParseError{Reason: "invalid json", Err: err}
	}
	return doc, nil
}

// NavError reports a failed walk through a decoded JSON value. Path is the
// dotted path up to and including the step that failed.
type NavError struct {
	Path     string
	Expected string
}

func (e *NavError) Error() string {
	if e.Expected != "" {
		return fmt.Sprintf("expected %s at %s in json", e.Expected, e.Path)
	}
	return fmt.Sprintf("could not navigate to %s in json", e.Path)
}

func navPath(path []any) string {
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = fmt.Sprint(p)
	}
	return strings.Join(parts, ".")
}

// Nav walks a decoded JSON value by a path of string keys (for objects) and
// int indices (for arrays). It returns the value at the end of the path or
// a NavError naming the step that failed.
func Nav(doc any, path ...any) (any, error) {
	cur := doc
	for i, step := range path {
		switch key := step.(type) {
		case string:
			obj, ok := cur.(map[string]any)
			if !ok {
				return nil, &NavError{Path: navPath(path[:i+1]), Expected: "object"}
			}
			cur, ok = obj[key]
			if !ok {
				return nil, &NavError{Path: navPath(path[:i+1])}
			}
		case int:
			arr, ok := cur.([]any)
			if !ok {
				return nil, &NavError{Path: navPath(path[:i+1]), Expected: "array"}
			}
			if key < 0 || key >= len(arr) {
				return nil, &NavError{Path: navPath(path[:i+1])}
			}
			cur = arr[key]
		default:
			return nil, &NavError{Path: navPath(path[:i+1]), Expected: "string key or int index"}
		}
	}
	return cur, nil
}

// NavString navigates to a string value.
func NavString(doc any, path ...any) (string, error) {
	v, err := Nav(doc, path...)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", &NavError{Path: navPath(path), Expected: "string"}
	}
	return s, nil
}

// NavBool navigates to a boolean value.
func NavBool(doc any, path ...any) (bool, error) {
	v, err := Nav(doc, path...)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, &NavError{Path: navPath(path), Expected: "bool"}
	}
	return b, nil
}

// NavObject navigates to an object value.
func NavObject(doc any, path ...any) (map[string]any, error) {
	v, err := Nav(doc, path...)
	if err != nil {
		return nil, err
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, &NavError{Path: navPath(path), Expected: "object"}
	}
	return obj, nil
}

// NavArray navigates to an array value.
func NavArray(doc any, path ...any) ([]any, error) {
	v, err := Nav(doc, path...)
	if err != nil {
		return nil, err
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, &NavError{Path: navPath(path), Expected: "array"}
	}
	return arr, nil
}
