package repository

import (
	"time"

	"github.com/dev-m-younas/Sport-Link-sub000/internal/store"
)

// Field accessors tolerant of the value types the store hands back. Firestore
// decodes integers as int64 and arrays as []interface{}; the in-memory store
// returns whatever was inserted.

func docString(doc *store.Document, path string) string {
	if s, ok := doc.Data[path].(string); ok {
		return s
	}
	return ""
}

func docBool(doc *store.Document, path string) bool {
	if b, ok := doc.Data[path].(bool); ok {
		return b
	}
	return false
}

func docInt(doc *store.Document, path string) int {
	switch n := doc.Data[path].(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}

func docFloat(doc *store.Document, path string) float64 {
	switch n := doc.Data[path].(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return 0
}

func docFloatPtr(doc *store.Document, path string) *float64 {
	if doc.Data[path] == nil {
		return nil
	}
	f := docFloat(doc, path)
	return &f
}

func docStringPtr(doc *store.Document, path string) *string {
	if s, ok := doc.Data[path].(string); ok {
		return &s
	}
	return nil
}

func docTime(doc *store.Document, path string) time.Time {
	if t, ok := doc.Data[path].(time.Time); ok {
		return t
	}
	return time.Time{}
}

func docStringSlice(doc *store.Document, path string) []string {
	switch v := doc.Data[path].(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
