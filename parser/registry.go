package parser

import (
	"fmt"
	"log"
	"sort"
	"sync"

	"busbar/codec"
)

// Registry maps format names to their parsers
type Registry struct {
	mu      sync.RWMutex
	parsers map[string]Parser
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// DefaultRegistry creates a registry pre-loaded with the canonical-format
// importers
func DefaultRegistry() *Registry {
	r := NewRegistry()
	// The canonical codecs satisfy Parser directly
	if err := r.Register(codec.NewJSONCodec()); err != nil {
		panic(err)
	}
	if err := r.Register(codec.NewYAMLCodec()); err != nil {
		panic(err)
	}
	return r
}

// Register adds a parser to the registry
func (r *Registry) Register(p Parser) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	format := p.Format()
	if format == "" {
		return fmt.Errorf("parser has an empty format name")
	}
	if _, exists := r.parsers[format]; exists {
		return fmt.Errorf("parser %s already registered", format)
	}

	r.parsers[format] = p
	log.Printf("Registered parser: %s", format)

	return nil
}

// Lookup returns the parser for a format name
func (r *Registry) Lookup(format string) (Parser, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.parsers[format]
	return p, ok
}

// Formats returns the registered format names, sorted
func (r *Registry) Formats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	formats := make([]string, 0, len(r.parsers))
	for format := range r.parsers {
		formats = append(formats, format)
	}
	sort.Strings(formats)
	return formats
}
