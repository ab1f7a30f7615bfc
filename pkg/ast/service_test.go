package ast

import (
	"slices"
	"testing"
)

func annotationList(s *ServiceDefinition) []Annotation {
	return s.Annotations().List()
}

func TestNewServiceDefinition_Defaults(t *testing.T) {
	s := NewServiceDefinition(ServiceDefinitionArgs{})

	if s.Kind() != KindService {
		t.Fatalf("kind = %q, want %q", s.Kind(), KindService)
	}
	if s.ID() == "" {
		t.Fatal("expected a node id")
	}
	if name, ok := s.ServiceName(); ok {
		t.Fatalf("service name should be unset, got %q", name)
	}

	want := []Annotation{
		{Key: "BasePath", Value: "/"},
		{Key: "Source:interface", Value: ""},
		{Key: "Service:description", Value: ""},
	}
	if got := annotationList(s); !slices.Equal(got, want) {
		t.Fatalf("annotations = %v, want %v", got, want)
	}
	if s.ResourceDefinitions() == nil || len(s.ResourceDefinitions()) != 0 {
		t.Errorf("resources should be an empty list, got %v", s.ResourceDefinitions())
	}
	if s.VariableDeclarations() == nil || len(s.VariableDeclarations()) != 0 {
		t.Errorf("variables should be an empty list, got %v", s.VariableDeclarations())
	}
	if s.ConnectionDeclarations() == nil || len(s.ConnectionDeclarations()) != 0 {
		t.Errorf("connections should be an empty list, got %v", s.ConnectionDeclarations())
	}
}

func TestNewServiceDefinition_KeepsCallerBasePath(t *testing.T) {
	s := NewServiceDefinition(ServiceDefinitionArgs{
		ServiceName: Ptr("Foo"),
		Annotations: []Annotation{{Key: "BasePath", Value: "/api"}},
	})

	if name, ok := s.ServiceName(); !ok || name != "Foo" {
		t.Fatalf("service name = %q (set=%v), want Foo", name, ok)
	}
	want := []Annotation{
		{Key: "BasePath", Value: "/api"},
		{Key: "Source:interface", Value: ""},
		{Key: "Service:description", Value: ""},
	}
	if got := annotationList(s); !slices.Equal(got, want) {
		t.Fatalf("annotations = %v, want %v", got, want)
	}
}

func TestNewServiceDefinition_CallerAnnotationsFirst(t *testing.T) {
	s := NewServiceDefinition(ServiceDefinitionArgs{
		Annotations: []Annotation{
			{Key: "Consumes", Value: "application/json"},
			{Key: "Service:description", Value: "orders"},
		},
	})

	want := []Annotation{
		{Key: "Consumes", Value: "application/json"},
		{Key: "Service:description", Value: "orders"},
		{Key: "BasePath", Value: "/"},
		{Key: "Source:interface", Value: ""},
	}
	if got := annotationList(s); !slices.Equal(got, want) {
		t.Fatalf("annotations = %v, want %v", got, want)
	}
}

func TestNewServiceDefinition_ArgsSliceNotShared(t *testing.T) {
	caller := []Annotation{{Key: "BasePath", Value: "/a"}}
	s := NewServiceDefinition(ServiceDefinitionArgs{Annotations: caller})
	s.AddAnnotation("BasePath", "/b")

	if caller[0].Value != "/a" {
		t.Fatalf("caller slice mutated: %v", caller)
	}
}

func TestAddAnnotation_AppendsNewKey(t *testing.T) {
	keys := []string{"Consumes", "Produces", "basepath", " BasePath"}
	for _, key := range keys {
		t.Run(key, func(t *testing.T) {
			s := NewServiceDefinition(ServiceDefinitionArgs{})
			before := s.Annotations().Len()

			s.AddAnnotation(key, "v")

			if got := s.Annotations().Len(); got != before+1 {
				t.Fatalf("len = %d, want %d", got, before+1)
			}
			last := s.Annotations().At(s.Annotations().Len() - 1)
			if last != (Annotation{Key: key, Value: "v"}) {
				t.Fatalf("last entry = %v", last)
			}
		})
	}
}

func TestAddAnnotation_UpdatesInPlace(t *testing.T) {
	for i, d := range DefaultServiceAnnotations() {
		t.Run(d.Key, func(t *testing.T) {
			s := NewServiceDefinition(ServiceDefinitionArgs{})

			s.AddAnnotation(d.Key, "changed")

			if got := s.Annotations().Len(); got != 3 {
				t.Fatalf("len = %d, want 3", got)
			}
			if got := s.Annotations().At(i); got != (Annotation{Key: d.Key, Value: "changed"}) {
				t.Fatalf("entry %d = %v", i, got)
			}
		})
	}
}

func TestAddAnnotation_ServiceDescription(t *testing.T) {
	s := NewServiceDefinition(ServiceDefinitionArgs{})
	s.AddAnnotation("Service:description", "desc")

	if got := s.Annotations().Len(); got != 3 {
		t.Fatalf("len = %d, want 3", got)
	}
	if v, _ := s.Annotations().Get("Service:description"); v != "desc" {
		t.Fatalf("description = %q", v)
	}
}

func TestSetters_NilIsNoop(t *testing.T) {
	res := NewResourceDefinition("get")
	v := NewVariableDeclaration("int", "count", "0")
	c := NewConnectorDeclaration("http", "ClientConnector", "ep")
	s := NewServiceDefinition(ServiceDefinitionArgs{
		ServiceName:            Ptr("Foo"),
		ResourceDefinitions:    []*ResourceDefinition{res},
		VariableDeclarations:   []*VariableDeclaration{v},
		ConnectionDeclarations: []*ConnectorDeclaration{c},
	})

	s.SetServiceName(nil)
	s.SetResourceDefinitions(nil)
	s.SetVariableDeclarations(nil)
	s.SetConnectionDeclarations(nil)

	if name, ok := s.ServiceName(); !ok || name != "Foo" {
		t.Errorf("service name = %q (set=%v)", name, ok)
	}
	if got := s.ResourceDefinitions(); len(got) != 1 || got[0] != res {
		t.Errorf("resources = %v", got)
	}
	if got := s.VariableDeclarations(); len(got) != 1 || got[0] != v {
		t.Errorf("variables = %v", got)
	}
	if got := s.ConnectionDeclarations(); len(got) != 1 || got[0] != c {
		t.Errorf("connections = %v", got)
	}
	for _, n := range []Node{res, v, c} {
		if n.Parent() != Node(s) {
			t.Errorf("%s lost its parent", n.Kind())
		}
	}
}

func TestSetters_Replace(t *testing.T) {
	old := NewResourceDefinition("old")
	s := NewServiceDefinition(ServiceDefinitionArgs{ResourceDefinitions: []*ResourceDefinition{old}})

	next := []*ResourceDefinition{NewResourceDefinition("a"), NewResourceDefinition("b")}
	s.SetResourceDefinitions(next)
	s.SetServiceName(Ptr("Bar"))

	if got := s.ResourceDefinitions(); len(got) != 2 || got[0].Name != "a" || got[1].Name != "b" {
		t.Fatalf("resources = %v", got)
	}
	if old.Parent() != nil {
		t.Error("replaced resource should be released")
	}
	for _, r := range next {
		if r.Parent() != Node(s) {
			t.Errorf("resource %s not adopted", r.Name)
		}
	}
	if name, _ := s.ServiceName(); name != "Bar" {
		t.Errorf("service name = %q", name)
	}

	s.SetVariableDeclarations([]*VariableDeclaration{})
	if s.VariableDeclarations() == nil {
		t.Error("empty slice should replace the field, not be ignored")
	}
}

func TestSetters_MoveFromOtherService(t *testing.T) {
	v := NewVariableDeclaration("string", "greeting", `"hi"`)
	a := NewServiceDefinition(ServiceDefinitionArgs{VariableDeclarations: []*VariableDeclaration{v}})
	b := NewServiceDefinition(ServiceDefinitionArgs{})

	b.SetVariableDeclarations([]*VariableDeclaration{v})

	if len(a.VariableDeclarations()) != 0 {
		t.Fatalf("variable still listed in previous service: %v", a.VariableDeclarations())
	}
	if v.Parent() != Node(b) {
		t.Fatal("variable should belong to the new service")
	}
}

func TestSetters_RepeatedNodeListedOnce(t *testing.T) {
	r := NewResourceDefinition("get")
	v := NewVariableDeclaration("int", "i", "")
	c := NewConnectorDeclaration("http", "ClientConnector", "ep")
	s := NewServiceDefinition(ServiceDefinitionArgs{
		VariableDeclarations: []*VariableDeclaration{v, v},
	})
	if len(s.VariableDeclarations()) != 1 {
		t.Fatalf("variables = %v", s.VariableDeclarations())
	}

	s.SetResourceDefinitions([]*ResourceDefinition{r, r})
	s.SetConnectionDeclarations([]*ConnectorDeclaration{c, c, c})
	if len(s.ResourceDefinitions()) != 1 || len(s.ConnectionDeclarations()) != 1 {
		t.Fatalf("resources = %v, connections = %v", s.ResourceDefinitions(), s.ConnectionDeclarations())
	}

	if err := Detach(r); err != nil {
		t.Fatalf("Detach: %v", err)
	}
	if r.Parent() != nil || len(s.ResourceDefinitions()) != 0 {
		t.Fatalf("parent = %v, listed = %d", r.Parent(), len(s.ResourceDefinitions()))
	}
}

func TestAddAnnotation_ZeroValue(t *testing.T) {
	var s ServiceDefinition
	s.AddAnnotation("BasePath", "/zero")
	if v, _ := s.Annotations().Get("BasePath"); v != "/zero" {
		t.Fatalf("BasePath = %q", v)
	}

	var r ResourceDefinition
	r.AddAnnotation("GET", "")
	if !r.Annotations().Has("GET") {
		t.Fatal("resource annotation missing")
	}
}

func TestServiceCanBeParentOf(t *testing.T) {
	s := NewServiceDefinition(ServiceDefinitionArgs{})

	cases := []struct {
		node Node
		want bool
	}{
		{NewResourceDefinition("r"), true},
		{NewVariableDeclaration("int", "i", ""), true},
		{NewConnectorDeclaration("http", "ClientConnector", "c"), true},
		{NewServiceDefinition(ServiceDefinitionArgs{}), false},
		{NewFunctionDefinition("f", nil), false},
		{NewImportDeclaration("ballerina.net.http"), false},
		{NewFile("pkg"), false},
		{nil, false},
		{(*ResourceDefinition)(nil), false},
	}
	for _, tc := range cases {
		if got := s.CanBeParentOf(tc.node); got != tc.want {
			t.Errorf("CanBeParentOf(%v) = %v, want %v", kindOf(tc.node), got, tc.want)
		}
	}
}

func TestServiceChildrenOrder(t *testing.T) {
	r := NewResourceDefinition("r")
	v := NewVariableDeclaration("int", "i", "")
	c := NewConnectorDeclaration("http", "ClientConnector", "c")
	s := NewServiceDefinition(ServiceDefinitionArgs{
		ResourceDefinitions:    []*ResourceDefinition{r},
		VariableDeclarations:   []*VariableDeclaration{v},
		ConnectionDeclarations: []*ConnectorDeclaration{c},
	})

	got := s.Children()
	want := []Node{c, v, r}
	if !slices.Equal(got, want) {
		t.Fatalf("children = %v, want %v", got, want)
	}
}
