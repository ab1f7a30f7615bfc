package integration

import (
	"context"
	"testing"

	"github.com/honeybbq/serviceast/internal/document"
	"github.com/honeybbq/serviceast/pkg/serviceast"
)

func TestMergeLayers_Render(t *testing.T) {
	t.Parallel()

	msg, err := document.Load(nil, []string{testdataPath("base.yaml"), testdataPath("override.json")}, serviceast.DefaultIdentifiers)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	bundle, err := newBallerinaBackend().ToNative(context.Background(), msg, serviceast.RenderOptions{})
	if err != nil {
		t.Fatalf("ToNative failed: %v", err)
	}
	got := bundleToText(bundle)
	want := string(readTestdata(t, "merged.bal"))
	if !compareSources(got, want) {
		t.Fatalf("%s", formatSourceDiff(got, want))
	}
}

func TestMergeLayers_ByName(t *testing.T) {
	t.Parallel()

	merged, err := serviceast.MergeJSON([][]byte{
		[]byte(`{"services": [{"name": "A", "variables": [{"type": "int", "name": "x", "value": "1"}]}]}`),
		[]byte(`{"services": [{"name": "B"}, {"name": "A", "variables": [{"name": "x", "value": "2"}]}]}`),
	}, nil)
	if err != nil {
		t.Fatalf("MergeJSON failed: %v", err)
	}
	msg := decodeDocument(t, merged)

	services := msg.GetFields()["services"].GetListValue().GetValues()
	if len(services) != 2 {
		t.Fatalf("expected 2 services, got %d", len(services))
	}
	a := services[0].GetStructValue()
	if a.GetFields()["name"].GetStringValue() != "A" {
		t.Fatalf("first service should stay A: %v", a)
	}
	x := a.GetFields()["variables"].GetListValue().GetValues()[0].GetStructValue()
	if x.GetFields()["type"].GetStringValue() != "int" || x.GetFields()["value"].GetStringValue() != "2" {
		t.Errorf("variable x = %v", x)
	}
}
