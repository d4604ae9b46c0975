package contenttypes

import (
	"fmt"
	"strings"
	"sync"

	"gorm.io/gorm"
)

// ResolverFunc loads the record a (key, id) pair points at and returns
// its string form for display.
type ResolverFunc func(db *gorm.DB, id uint) (string, error)

// ContentType maps a registered model type to an identifier and a human
// label. A type opts into being reviewable by registering here.
type ContentType struct {
	Key     string // lowercased model name, e.g. "product"
	Label   string // human label, e.g. "product"
	Resolve ResolverFunc
}

var (
	mu       sync.RWMutex
	registry []ContentType
	byKey    = make(map[string]int)
)

// Register adds a model type to the registry. Keys must be unique.
func Register(ct ContentType) error {
	if ct.Key == "" {
		return fmt.Errorf("content type key is required")
	}
	if ct.Resolve == nil {
		return fmt.Errorf("content type %q has no resolver", ct.Key)
	}
	if ct.Label == "" {
		ct.Label = ct.Key
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := byKey[ct.Key]; exists {
		return fmt.Errorf("content type %q is already registered", ct.Key)
	}
	byKey[ct.Key] = len(registry)
	registry = append(registry, ct)
	return nil
}

// Get returns the registered content type for a key.
func Get(key string) (ContentType, bool) {
	mu.RLock()
	defer mu.RUnlock()

	idx, ok := byKey[key]
	if !ok {
		return ContentType{}, false
	}
	return registry[idx], true
}

// ReviewableModels returns all registered content types in registration
// order. Empty slice when nothing is registered.
func ReviewableModels() []ContentType {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]ContentType, len(registry))
	copy(out, registry)
	return out
}

// Resolve loads the record referenced by (key, id) and returns its
// string form. A dangling reference surfaces as the lookup error.
func Resolve(db *gorm.DB, key string, id uint) (string, error) {
	ct, ok := Get(key)
	if !ok {
		return "", fmt.Errorf("unknown content type %q", key)
	}
	return ct.Resolve(db, id)
}

// Reset clears the registry. Tests use it to control which types are
// registered.
func Reset() {
	mu.Lock()
	defer mu.Unlock()

	registry = nil
	byKey = make(map[string]int)
}

// Title returns the label in title case for display, e.g. "product" ->
// "Product".
func Title(label string) string {
	words := strings.Fields(label)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
