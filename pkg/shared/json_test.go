package shared

import (
	"encoding/json"
	"errors"
	"testing"
)

type namedDocument struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func TestStringifyJSONKeepsFieldOrder(t *testing.T) {
	encoded, err := StringifyJSON(namedDocument{
		Name:        "Tom",
		Description: "Some random description about Tom",
	})
	if err != nil {
		t.Fatalf("StringifyJSON failed: %v", err)
	}

	expected := `{"name":"Tom","description":"Some random description about Tom"}`
	if string(encoded) != expected {
		t.Fatalf("unexpected JSON: %s", encoded)
	}
}

func TestStringifyJSONDoesNotEscapeHTML(t *testing.T) {
	encoded, err := StringifyJSON(map[string]any{"url": "https://a.example/?a=1&b=<2>"})
	if err != nil {
		t.Fatalf("StringifyJSON failed: %v", err)
	}

	expected := `{"url":"https://a.example/?a=1&b=<2>"}`
	if string(encoded) != expected {
		t.Fatalf("unexpected JSON: %s", encoded)
	}
}

func TestOrderedObjectMarshalsInInsertionOrder(t *testing.T) {
	object := OrderedObject{}.
		Set("zeta", 1).
		Set("alpha", OrderedObject{{Key: "y", Value: true}, {Key: "x", Value: nil}}).
		Set("mid", []any{"a&b", 2.5})
	object = object.Set("zeta", 3)

	encoded, err := StringifyJSON(object)
	if err != nil {
		t.Fatalf("StringifyJSON failed: %v", err)
	}

	expected := `{"zeta":3,"alpha":{"y":true,"x":null},"mid":["a&b",2.5]}`
	if string(encoded) != expected {
		t.Fatalf("unexpected JSON: %s", encoded)
	}

	value, ok := object.Get("mid")
	if !ok || value == nil {
		t.Fatalf("expected mid field to be present")
	}
	if _, ok := object.Get("missing"); ok {
		t.Fatalf("expected missing field to be absent")
	}
}

func TestValidateJSONAcceptsDocuments(t *testing.T) {
	valid := []any{
		map[string]any{"data": "some text", "index": 10, "value": "blah blah"},
		[]any{},
		namedDocument{Name: "Tom"},
		&namedDocument{Name: "Tom"},
		json.RawMessage(`{"a":1}`),
		OrderedObject{{Key: "a", Value: 1}},
	}
	for _, value := range valid {
		if err := ValidateJSON(value); err != nil {
			t.Fatalf("expected %T to be valid, got %v", value, err)
		}
	}
}

func TestValidateJSONRejectsPrimitives(t *testing.T) {
	var nilDocument *namedDocument
	invalid := []any{
		nil,
		"some random string",
		312321,
		true,
		[]byte(`{"a":1}`),
		json.RawMessage(`"text"`),
		nilDocument,
		make(chan int),
	}
	for _, value := range invalid {
		err := ValidateJSON(value)
		if !errors.Is(err, ErrNotAJSONObject) {
			t.Fatalf("expected not_a_json_object for %T, got %v", value, err)
		}
	}
}

func TestCanonicalJSON(t *testing.T) {
	encoded, err := CanonicalJSON(map[string]any{"name": "Tom"})
	if err != nil {
		t.Fatalf("CanonicalJSON failed: %v", err)
	}
	if string(encoded) != `{"name":"Tom"}` {
		t.Fatalf("unexpected JSON: %s", encoded)
	}

	if _, err := CanonicalJSON("{}"); err == nil {
		t.Fatalf("expected pre-serialized string to be rejected")
	}
}
