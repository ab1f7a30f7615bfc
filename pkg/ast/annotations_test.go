package ast

import (
	"slices"
	"testing"
)

func TestAnnotations_ZeroValue(t *testing.T) {
	var a Annotations
	if a.Len() != 0 {
		t.Fatalf("len = %d", a.Len())
	}
	if !a.Set("k", "v") {
		t.Fatal("Set on zero value should append")
	}
	if v, ok := a.Get("k"); !ok || v != "v" {
		t.Fatalf("Get = %q, %v", v, ok)
	}

	var nilSet *Annotations
	if nilSet.Len() != 0 || nilSet.Has("k") || len(nilSet.List()) != 0 {
		t.Fatal("nil set should read as empty")
	}
}

func TestAnnotations_DuplicateEntriesKeepFirstPosition(t *testing.T) {
	a := NewAnnotations(
		Annotation{Key: "a", Value: "1"},
		Annotation{Key: "b", Value: "2"},
		Annotation{Key: "a", Value: "3"},
	)

	want := []Annotation{{Key: "a", Value: "3"}, {Key: "b", Value: "2"}}
	if got := a.List(); !slices.Equal(got, want) {
		t.Fatalf("list = %v, want %v", got, want)
	}
}

func TestAnnotations_ExactKeyMatch(t *testing.T) {
	a := NewAnnotations(Annotation{Key: "BasePath", Value: "/"})
	a.Set("basepath", "/x")
	a.Set("BasePath ", "/y")

	if a.Len() != 3 {
		t.Fatalf("keys differing in case or whitespace must stay distinct, got %v", a.Keys())
	}
}

func TestAnnotations_SetDefault(t *testing.T) {
	a := NewAnnotations(Annotation{Key: "a", Value: "1"})
	if a.SetDefault("a", "2") {
		t.Error("SetDefault must not overwrite")
	}
	if v, _ := a.Get("a"); v != "1" {
		t.Errorf("a = %q", v)
	}
	if !a.SetDefault("b", "2") {
		t.Error("SetDefault should append a missing key")
	}
}

func TestAnnotations_Delete(t *testing.T) {
	a := NewAnnotations(
		Annotation{Key: "a", Value: "1"},
		Annotation{Key: "b", Value: "2"},
		Annotation{Key: "c", Value: "3"},
	)
	keys := a.Keys()

	if !a.Delete("b") {
		t.Fatal("Delete(b) = false")
	}
	if a.Delete("b") {
		t.Fatal("second Delete(b) = true")
	}
	if got := a.Keys(); !slices.Equal(got, []string{"a", "c"}) {
		t.Fatalf("keys = %v", got)
	}
	if a.Index("c") != 1 {
		t.Fatalf("Index(c) = %d", a.Index("c"))
	}
	if !slices.Equal(keys, []string{"a", "b", "c"}) {
		t.Fatalf("earlier Keys() result changed: %v", keys)
	}
}

func TestAnnotations_AllStopsEarly(t *testing.T) {
	a := NewAnnotations(
		Annotation{Key: "a", Value: "1"},
		Annotation{Key: "b", Value: "2"},
	)
	var seen []string
	for k := range a.All() {
		seen = append(seen, k)
		break
	}
	if !slices.Equal(seen, []string{"a"}) {
		t.Fatalf("seen = %v", seen)
	}
}
