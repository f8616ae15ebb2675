package shared

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Field is one key/value pair of an OrderedObject.
type Field struct {
	Key   string
	Value any
}

// OrderedObject is a JSON object that serializes its fields in slice order.
type OrderedObject []Field

// Set replaces the value of key, or appends it when key is not present.
func (o OrderedObject) Set(key string, value any) OrderedObject {
	for index := range o {
		if o[index].Key == key {
			o[index].Value = value
			return o
		}
	}
	return append(o, Field{Key: key, Value: value})
}

// Get returns the value stored under key.
func (o OrderedObject) Get(key string) (any, bool) {
	for _, field := range o {
		if field.Key == key {
			return field.Value, true
		}
	}
	return nil, false
}

func (o OrderedObject) MarshalJSON() ([]byte, error) {
	var buffer bytes.Buffer
	buffer.WriteByte('{')
	for index, field := range o {
		if index > 0 {
			buffer.WriteByte(',')
		}
		encodedKey, err := StringifyJSON(field.Key)
		if err != nil {
			return nil, err
		}
		buffer.Write(encodedKey)
		buffer.WriteByte(':')

		encodedValue, err := StringifyJSON(field.Value)
		if err != nil {
			return nil, err
		}
		buffer.Write(encodedValue)
	}
	buffer.WriteByte('}')
	return buffer.Bytes(), nil
}

// StringifyJSON serializes value without whitespace and without HTML
// escaping, matching JavaScript JSON.stringify output byte for byte.
func StringifyJSON(value any) ([]byte, error) {
	var buffer bytes.Buffer
	encoder := json.NewEncoder(&buffer)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(value); err != nil {
		return nil, fmt.Errorf("failed to serialize JSON: %w", err)
	}
	return bytes.TrimSuffix(buffer.Bytes(), []byte("\n")), nil
}

// ValidateJSON checks that value is a structured JSON document: it must
// serialize, and parsing the serialization back must yield an object or an
// array. Primitives, nil and pre-serialized strings are rejected.
func ValidateJSON(value any) error {
	if value == nil {
		return ErrNotAJSONObject
	}

	serialized, err := StringifyJSON(value)
	if err != nil {
		return &ValidationError{
			Code:    ErrorCodeNotAJSONObject,
			Message: fmt.Sprintf("value is not a valid JSON object: %v", err),
		}
	}

	var parsed any
	if err := json.Unmarshal(serialized, &parsed); err != nil {
		return &ValidationError{
			Code:    ErrorCodeNotAJSONObject,
			Message: fmt.Sprintf("value is not a valid JSON object: %v", err),
		}
	}

	switch parsed.(type) {
	case map[string]any, []any:
		return nil
	default:
		return ErrNotAJSONObject
	}
}

// CanonicalJSON validates value and returns its serialized bytes.
func CanonicalJSON(value any) ([]byte, error) {
	if err := ValidateJSON(value); err != nil {
		return nil, err
	}
	return StringifyJSON(value)
}
