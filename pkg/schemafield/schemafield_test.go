package schemafield

import (
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/go-cmp/cmp"
)

func float64Ptr(v float64) *float64 { return &v }
func uint64Ptr(v uint64) *uint64    { return &v }

func TestIntField_BoundsFromSchema(t *testing.T) {
	schema := &openapi3.Schema{
		Type: &openapi3.Types{"integer"},
		Min:  float64Ptr(0),
		Max:  float64Ptr(10),
	}

	f, err := IntField(schema)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f.SetUserInput("11")
	if f.Valid() {
		t.Fatal("expected 11 to violate maximum 10")
	}
	if diff := cmp.Diff([]string{"must be at most 10"}, f.Errors()); diff != "" {
		t.Fatalf("unexpected errors (-want +got):\n%s", diff)
	}

	f.SetUserInput("10")
	if !f.Valid() {
		t.Fatalf("expected inclusive bound to pass, errors: %v", f.Errors())
	}
}

func TestIntField_ExclusiveBounds(t *testing.T) {
	schema := &openapi3.Schema{
		Type:         &openapi3.Types{"integer"},
		Min:          float64Ptr(0),
		ExclusiveMin: true,
	}

	f, err := IntField(schema)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f.SetUserInput("0")
	if f.Valid() {
		t.Fatal("expected exclusive minimum to reject 0")
	}
	f.SetUserInput("1")
	if !f.Valid() {
		t.Fatalf("expected 1 to pass, errors: %v", f.Errors())
	}
}

func TestIntField_DefaultSeedsPersistedValue(t *testing.T) {
	schema := &openapi3.Schema{
		Type:    &openapi3.Types{"integer"},
		Default: float64(3),
	}

	f, err := IntField(schema)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := f.Persisted(); got != 3 {
		t.Fatalf("expected default 3 as persisted value, got %d", got)
	}
	if f.Changed() {
		t.Fatal("expected seeded field to be unchanged")
	}
}

func TestIntField_RejectsMismatchedType(t *testing.T) {
	schema := &openapi3.Schema{Type: &openapi3.Types{"string"}}
	if _, err := IntField(schema); err == nil {
		t.Fatal("expected type mismatch error")
	}
}

func TestStringField_ConstraintsFromSchema(t *testing.T) {
	schema := &openapi3.Schema{
		Type:      &openapi3.Types{"string"},
		MinLength: 3,
		MaxLength: uint64Ptr(5),
		Pattern:   `^[a-z]+$`,
	}

	f, err := StringField(schema)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f.SetUserInput("ab")
	if f.Valid() {
		t.Fatal("expected too-short input to fail")
	}
	f.SetUserInput("abcdef")
	if f.Valid() {
		t.Fatal("expected too-long input to fail")
	}
	f.SetUserInput("ABC")
	if f.Valid() {
		t.Fatal("expected pattern mismatch to fail")
	}
	f.SetUserInput("abc")
	if !f.Valid() {
		t.Fatalf("expected valid input, errors: %v", f.Errors())
	}
}

func TestStringField_EnumBecomesOneOf(t *testing.T) {
	schema := &openapi3.Schema{
		Type: &openapi3.Types{"string"},
		Enum: []any{"draft", "published"},
	}

	f, err := StringField(schema)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f.SetUserInput("archived")
	if f.Valid() {
		t.Fatal("expected enum violation to fail")
	}
	if diff := cmp.Diff([]string{"must be one of: draft, published"}, f.Errors()); diff != "" {
		t.Fatalf("unexpected errors (-want +got):\n%s", diff)
	}

	f.SetUserInput("draft")
	if !f.Valid() {
		t.Fatalf("expected enum member to pass, errors: %v", f.Errors())
	}
}

func TestStringField_BadPatternIsConstructorError(t *testing.T) {
	schema := &openapi3.Schema{
		Type:    &openapi3.Types{"string"},
		Pattern: `[`,
	}
	if _, err := StringField(schema); err == nil {
		t.Fatal("expected pattern compile error")
	}
}

func TestFloatField_ExclusiveMaximum(t *testing.T) {
	schema := &openapi3.Schema{
		Type:         &openapi3.Types{"number"},
		Max:          float64Ptr(1),
		ExclusiveMax: true,
	}

	f, err := FloatField(schema)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f.SetUserInput("1")
	if f.Valid() {
		t.Fatal("expected exclusive maximum to reject 1")
	}
	f.SetUserInput("0.999")
	if !f.Valid() {
		t.Fatalf("expected 0.999 to pass, errors: %v", f.Errors())
	}
}

func TestBoolField_DefaultAndParsing(t *testing.T) {
	schema := &openapi3.Schema{
		Type:    &openapi3.Types{"boolean"},
		Default: true,
	}

	f, err := BoolField(schema)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !f.Persisted() {
		t.Fatal("expected default true")
	}
	f.SetUserInput("false")
	if !f.Valid() || f.Value() {
		t.Fatalf("expected false to parse, got valid=%v value=%v", f.Valid(), f.Value())
	}
}

func TestRequired(t *testing.T) {
	parent := &openapi3.Schema{
		Type:     &openapi3.Types{"object"},
		Required: []string{"age"},
	}

	if !Required(parent, "age") {
		t.Fatal("expected age to be required")
	}
	if Required(parent, "name") {
		t.Fatal("expected name to be optional")
	}
	if Required(nil, "age") {
		t.Fatal("expected nil parent to report optional")
	}
}
