package ast

import "iter"

// Annotation is a single key/value metadata entry.
type Annotation struct {
	Key   string
	Value string
}

// Annotations is an insertion-ordered map of annotation values. Keys are
// unique and compared exactly; no case folding or trimming is applied.
// The zero value is an empty set ready to use.
type Annotations struct {
	keys   []string
	values map[string]string
}

// NewAnnotations builds a set from entries in order. A repeated key updates
// the value at its first position.
func NewAnnotations(entries ...Annotation) *Annotations {
	a := &Annotations{}
	for _, e := range entries {
		a.Set(e.Key, e.Value)
	}
	return a
}

func (a *Annotations) Len() int {
	if a == nil {
		return 0
	}
	return len(a.keys)
}

func (a *Annotations) Get(key string) (string, bool) {
	if a == nil {
		return "", false
	}
	v, ok := a.values[key]
	return v, ok
}

func (a *Annotations) Has(key string) bool {
	_, ok := a.Get(key)
	return ok
}

// Index returns the position of key, or -1.
func (a *Annotations) Index(key string) int {
	if !a.Has(key) {
		return -1
	}
	for i, k := range a.keys {
		if k == key {
			return i
		}
	}
	return -1
}

// At returns the entry at position i. It panics if i is out of range.
func (a *Annotations) At(i int) Annotation {
	k := a.keys[i]
	return Annotation{Key: k, Value: a.values[k]}
}

// Set updates key in place, or appends it when absent. It reports whether
// a new entry was appended.
func (a *Annotations) Set(key, value string) bool {
	if a.values == nil {
		a.values = make(map[string]string)
	}
	_, exists := a.values[key]
	a.values[key] = value
	if !exists {
		a.keys = append(a.keys, key)
	}
	return !exists
}

// SetDefault appends key with value only if key is absent.
func (a *Annotations) SetDefault(key, value string) bool {
	if a.Has(key) {
		return false
	}
	return a.Set(key, value)
}

// Delete removes key and reports whether it was present.
func (a *Annotations) Delete(key string) bool {
	i := a.Index(key)
	if i < 0 {
		return false
	}
	a.keys = append(a.keys[:i:i], a.keys[i+1:]...)
	delete(a.values, key)
	return true
}

// Keys returns a copy of the keys in order.
func (a *Annotations) Keys() []string {
	if a == nil {
		return nil
	}
	return append([]string(nil), a.keys...)
}

// All iterates the entries in insertion order.
func (a *Annotations) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if a == nil {
			return
		}
		for _, k := range a.keys {
			if !yield(k, a.values[k]) {
				return
			}
		}
	}
}

// List returns the entries in insertion order.
func (a *Annotations) List() []Annotation {
	out := make([]Annotation, 0, a.Len())
	for k, v := range a.All() {
		out = append(out, Annotation{Key: k, Value: v})
	}
	return out
}
