package format

import (
	"reflect"
	"testing"
)

func TestRegistryGet(t *testing.T) {
	r := NewRegistry()

	for _, name := range []string{"json", "gob", "cbor", "packed"} {
		codec, err := r.Get(name)
		if err != nil {
			t.Errorf("Failed to get codec %s: %v", name, err)
		}
		if codec == nil {
			t.Errorf("Got nil codec for %s", name)
		}
	}

	if _, err := r.Get("msgpack"); err == nil {
		t.Errorf("Expected error for unknown format but got none")
	}
}

func TestRegistryBinaryClassification(t *testing.T) {
	r := NewRegistry()

	testCases := map[string]bool{
		"json":    false,
		"gob":     true,
		"cbor":    true,
		"packed":  true,
		"unknown": true, // unknown names default to binary
	}

	for name, expected := range testCases {
		if got := r.IsBinary(name); got != expected {
			t.Errorf("IsBinary(%q): expected %v, got %v", name, expected, got)
		}
	}
}

func TestRegistryNames(t *testing.T) {
	r := NewRegistry()

	expected := []string{"cbor", "gob", "json", "packed"}
	if got := r.Names(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected names %v, got %v", expected, got)
	}
}

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()

	r.Register("custom", CodecInfo{New: NewJSONCodec, Binary: false})

	if _, err := r.Get("custom"); err != nil {
		t.Errorf("Failed to get registered codec: %v", err)
	}
	if r.IsBinary("custom") {
		t.Errorf("Expected custom format to be classified as text")
	}
}

func TestDefaultRegistry(t *testing.T) {
	if Default() == nil {
		t.Fatalf("Default registry is nil")
	}

	codec, err := Get("json")
	if err != nil || codec == nil {
		t.Errorf("Failed to get json codec from default registry: %v", err)
	}
}
