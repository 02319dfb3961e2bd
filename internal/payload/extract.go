package payload

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/tidwall/gjson"
)

// Extractor finds a collection field inside one known wrapper of a response.
// Path is the gjson path of the wrapper object; an empty Path is the document
// root.
type Extractor struct {
	Name  string
	Path  string
	Field string
}

// Match is the result of a successful extraction.
type Match struct {
	Extractor  string
	Root       gjson.Result
	Collection gjson.Result
}

// Extract returns the wrapper and its collection when the collection is an
// array or an object.
func (e Extractor) Extract(doc gjson.Result) (Match, bool) {
	root := doc
	if e.Path != "" {
		root = doc.Get(e.Path)
	}
	if !root.IsObject() {
		return Match{}, false
	}
	collection := root.Get(e.Field)
	if !collection.IsArray() && !collection.IsObject() {
		return Match{}, false
	}
	return Match{Extractor: e.Name, Root: root, Collection: collection}, true
}

// FirstMatch tries each extractor in order and returns the first success.
func FirstMatch(doc gjson.Result, extractors []Extractor) (Match, error) {
	for _, e := range extractors {
		if m, ok := e.Extract(doc); ok {
			return m, nil
		}
	}
	return Match{}, fmt.Errorf("no known collection among %d shapes: %w", len(extractors), ErrShape)
}

// Parse validates body and returns the parsed document. A blank body or a
// JSON null is an empty payload; anything that is not JSON is a shape error.
func Parse(body []byte) (gjson.Result, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return gjson.Result{}, fmt.Errorf("response body is blank: %w", ErrEmptyPayload)
	}
	if !gjson.ValidBytes(trimmed) {
		return gjson.Result{}, fmt.Errorf("response body is not valid JSON: %w", ErrShape)
	}
	doc := gjson.ParseBytes(trimmed)
	if doc.Type == gjson.Null {
		return gjson.Result{}, fmt.Errorf("response body is null: %w", ErrEmptyPayload)
	}
	return doc, nil
}

// Entry is one non-null element of a collection together with its fallback
// key: the object key for mappings, the index for sequences.
type Entry struct {
	Key   string
	Value gjson.Result
}

// Entries flattens an array or object collection. Null elements are skipped
// but still consume their array index, so keys stay stable between polls.
func Entries(collection gjson.Result) []Entry {
	var entries []Entry
	if collection.IsArray() {
		for i, v := range collection.Array() {
			if !Present(v) {
				continue
			}
			entries = append(entries, Entry{Key: strconv.Itoa(i), Value: v})
		}
		return entries
	}
	collection.ForEach(func(key, value gjson.Result) bool {
		if Present(value) {
			entries = append(entries, Entry{Key: key.String(), Value: value})
		}
		return true
	})
	return entries
}

// Present reports whether r exists and is not JSON null.
func Present(r gjson.Result) bool {
	return r.Exists() && r.Type != gjson.Null
}

// Truthy reports whether r would count as set by a loosely typed producer:
// present, not false, not zero, not an empty string.
func Truthy(r gjson.Result) bool {
	switch r.Type {
	case gjson.Null:
		return false
	case gjson.False:
		return false
	case gjson.Number:
		return r.Num != 0
	case gjson.String:
		return r.Str != ""
	default:
		return r.Exists()
	}
}

// StringOr returns r as a string when truthy, otherwise fallback.
func StringOr(r gjson.Result, fallback string) string {
	if !Truthy(r) {
		return fallback
	}
	return r.String()
}
