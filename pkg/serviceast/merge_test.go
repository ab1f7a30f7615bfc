package serviceast

import (
	"encoding/json"
	"testing"
)

func TestMergeObjects_Scalars(t *testing.T) {
	base := map[string]any{"package": "hello", "version": "1"}
	over := map[string]any{"package": "orders"}

	got := mergeObjects(base, over, DefaultIdentifiers)

	if got["package"] != "orders" {
		t.Errorf("package should be overridden, got %v", got["package"])
	}
	if got["version"] != "1" {
		t.Errorf("version should be preserved, got %v", got["version"])
	}
	if base["package"] != "hello" {
		t.Errorf("base must not be mutated")
	}
}

func TestMergeLists_AnnotationByKey(t *testing.T) {
	base := []any{
		map[string]any{"key": "BasePath", "value": "/"},
		map[string]any{"key": "Service:description", "value": ""},
	}
	over := []any{
		map[string]any{"key": "BasePath", "value": "/api"},
		map[string]any{"key": "Consumes", "value": "application/json"},
	}

	got := mergeLists(base, over, DefaultIdentifiers)

	if len(got) != 3 {
		t.Fatalf("want 3 annotations, got %d: %v", len(got), got)
	}
	first := got[0].(map[string]any)
	if first["key"] != "BasePath" || first["value"] != "/api" {
		t.Errorf("BasePath should be merged in place, got %v", first)
	}
	if got[2].(map[string]any)["key"] != "Consumes" {
		t.Errorf("new annotation should be appended, got %v", got[2])
	}
}

func TestMergeLists_ServicesByNameRecursive(t *testing.T) {
	base := []any{
		map[string]any{
			"name": "Hello",
			"resources": []any{
				map[string]any{"name": "get", "parameters": []any{}},
			},
		},
	}
	over := []any{
		map[string]any{
			"name": "Hello",
			"resources": []any{
				map[string]any{"name": "post"},
			},
		},
	}

	got := mergeLists(base, over, DefaultIdentifiers)
	if len(got) != 1 {
		t.Fatalf("want 1 service, got %d", len(got))
	}
	resources := got[0].(map[string]any)["resources"].([]any)
	if len(resources) != 2 {
		t.Fatalf("want 2 resources, got %v", resources)
	}
}

func TestMergeLists_DropsExactDuplicates(t *testing.T) {
	base := []any{"ballerina.lang.system"}
	over := []any{"ballerina.lang.system", "ballerina.net.http"}

	got := mergeLists(base, over, DefaultIdentifiers)
	if len(got) != 2 {
		t.Fatalf("want 2 entries, got %v", got)
	}
}

func TestMergeJSON(t *testing.T) {
	base := []byte(`{"package":"hello","services":[{"name":"Hello","annotations":[{"key":"BasePath","value":"/"}]}]}`)
	over := []byte(`{"services":[{"name":"Hello","annotations":[{"key":"BasePath","value":"/hello"}]}]}`)

	out, err := MergeJSON([][]byte{base, over}, nil)
	if err != nil {
		t.Fatalf("MergeJSON: %v", err)
	}

	var doc struct {
		Package  string `json:"package"`
		Services []struct {
			Name        string `json:"name"`
			Annotations []struct {
				Key   string `json:"key"`
				Value string `json:"value"`
			} `json:"annotations"`
		} `json:"services"`
	}
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.Package != "hello" || len(doc.Services) != 1 {
		t.Fatalf("unexpected merge result: %s", out)
	}
	ann := doc.Services[0].Annotations
	if len(ann) != 1 || ann[0].Value != "/hello" {
		t.Fatalf("annotations = %+v", ann)
	}
}

func TestMergeJSON_Errors(t *testing.T) {
	if _, err := MergeJSON(nil, nil); err == nil {
		t.Error("expected error for no documents")
	}
	if _, err := MergeJSON([][]byte{[]byte(`{`)}, nil); err == nil {
		t.Error("expected error for invalid JSON")
	}
}
