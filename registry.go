package aotjson

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/viant/aotjson/jsonerr"
)

// Registry maps Go types to their converters. Entries are added once and
// never removed; lookups are safe from any goroutine.
type Registry struct {
	converters sync.Map
}

var defaultRegistry = NewRegistry()

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// DefaultRegistry returns the process-wide registry populated by generated init functions.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Has reports whether a converter is registered for t.
func (r *Registry) Has(t reflect.Type) bool {
	_, ok := r.converters.Load(t)
	return ok
}

// Types returns the registered types ordered by name.
func (r *Registry) Types() []reflect.Type {
	var result []reflect.Type
	r.converters.Range(func(key, _ any) bool {
		result = append(result, key.(reflect.Type))
		return true
	})
	slices.SortFunc(result, func(a, b reflect.Type) int {
		return strings.Compare(a.String(), b.String())
	})
	return result
}

// Register adds conv to the default registry. It panics if T already has a converter.
func Register[T any](conv Converter[T]) {
	RegisterTo(defaultRegistry, conv)
}

// RegisterTo adds conv to r. It panics if T already has a converter.
func RegisterTo[T any](r *Registry, conv Converter[T]) {
	t := reflect.TypeFor[T]()
	if _, loaded := r.converters.LoadOrStore(t, conv); loaded {
		panic(fmt.Sprintf("aotjson: converter for %v already registered", t))
	}
}

// Lookup returns the converter for T from the default registry.
func Lookup[T any]() (Converter[T], error) {
	return LookupIn[T](defaultRegistry)
}

// LookupIn returns the converter for T from r.
func LookupIn[T any](r *Registry) (Converter[T], error) {
	t := reflect.TypeFor[T]()
	v, ok := r.converters.Load(t)
	if !ok {
		return nil, jsonerr.Unsupported(t.String())
	}
	return v.(Converter[T]), nil
}
