package schemafield

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/validation"
)

var errNilSchema = errors.New("schemafield: schema must not be nil")

// Required reports whether the parent object schema lists name as required.
func Required(parent *openapi3.Schema, name string) bool {
	if parent == nil {
		return false
	}
	for _, required := range parent.Required {
		if required == name {
			return true
		}
	}
	return false
}

// StringField builds a string field from schema, installing validators for
// minLength/maxLength, pattern, and enum constraints. Additional field
// options are applied after the derived ones.
func StringField(schema *openapi3.Schema, opts ...field.Option[string]) (*field.Field[string], error) {
	if schema == nil {
		return nil, errNilSchema
	}
	if err := checkType(schema, "string"); err != nil {
		return nil, err
	}

	var validators []validation.Validator[string]
	if schema.MinLength > 0 {
		n := int(schema.MinLength)
		validators = append(validators, validation.MinLength(n, fmt.Sprintf("must be at least %d characters", n)))
	}
	if schema.MaxLength != nil {
		n := int(*schema.MaxLength)
		validators = append(validators, validation.MaxLength(n, fmt.Sprintf("must be at most %d characters", n)))
	}
	if schema.Pattern != "" {
		v, err := validation.Pattern(schema.Pattern, fmt.Sprintf("must match %s", schema.Pattern))
		if err != nil {
			return nil, fmt.Errorf("schemafield: %w", err)
		}
		validators = append(validators, v)
	}
	if allowed := stringEnum(schema.Enum); len(allowed) > 0 {
		validators = append(validators, validation.OneOf(allowed, fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", "))))
	}

	initial, _ := schema.Default.(string)
	combined := append([]field.Option[string]{field.WithValidators(validators...)}, opts...)
	return field.NewString(initial, combined...), nil
}

// IntField builds an integer field from schema, installing validators for
// minimum/maximum bounds (honouring exclusivity) and enum constraints.
func IntField(schema *openapi3.Schema, opts ...field.Option[int]) (*field.Field[int], error) {
	if schema == nil {
		return nil, errNilSchema
	}
	if err := checkType(schema, "integer"); err != nil {
		return nil, err
	}

	var validators []validation.Validator[int]
	if schema.Min != nil {
		validators = append(validators, intLowerBound(*schema.Min, schema.ExclusiveMin))
	}
	if schema.Max != nil {
		validators = append(validators, intUpperBound(*schema.Max, schema.ExclusiveMax))
	}
	if allowed := intEnum(schema.Enum); len(allowed) > 0 {
		validators = append(validators, validation.OneOf(allowed, "must be one of the allowed values"))
	}

	initial, _ := intValue(schema.Default)
	combined := append([]field.Option[int]{field.WithValidators(validators...)}, opts...)
	return field.NewInt(initial, combined...), nil
}

// FloatField builds a float64 field from schema, installing validators for
// minimum/maximum bounds (honouring exclusivity).
func FloatField(schema *openapi3.Schema, opts ...field.Option[float64]) (*field.Field[float64], error) {
	if schema == nil {
		return nil, errNilSchema
	}
	if err := checkType(schema, "number"); err != nil {
		return nil, err
	}

	var validators []validation.Validator[float64]
	if schema.Min != nil {
		min := *schema.Min
		if schema.ExclusiveMin {
			validators = append(validators, validation.Custom(func(v float64) bool { return v > min },
				fmt.Sprintf("must be greater than %v", min)))
		} else {
			validators = append(validators, validation.Min(min, fmt.Sprintf("must be at least %v", min)))
		}
	}
	if schema.Max != nil {
		max := *schema.Max
		if schema.ExclusiveMax {
			validators = append(validators, validation.Custom(func(v float64) bool { return v < max },
				fmt.Sprintf("must be less than %v", max)))
		} else {
			validators = append(validators, validation.Max(max, fmt.Sprintf("must be at most %v", max)))
		}
	}

	initial, _ := floatValue(schema.Default)
	combined := append([]field.Option[float64]{field.WithValidators(validators...)}, opts...)
	return field.NewFloat(initial, combined...), nil
}

// BoolField builds a boolean field from schema.
func BoolField(schema *openapi3.Schema, opts ...field.Option[bool]) (*field.Field[bool], error) {
	if schema == nil {
		return nil, errNilSchema
	}
	if err := checkType(schema, "boolean"); err != nil {
		return nil, err
	}

	initial, _ := schema.Default.(bool)
	return field.NewBool(initial, opts...), nil
}

func checkType(schema *openapi3.Schema, want string) error {
	if schema.Type == nil {
		return nil
	}
	if schema.Type.Is(want) {
		return nil
	}
	return fmt.Errorf("schemafield: schema type %q does not fit a %s field", strings.Join(schema.Type.Slice(), ","), want)
}

func intLowerBound(min float64, exclusive bool) validation.Validator[int] {
	if exclusive {
		return validation.Custom(func(v int) bool { return float64(v) > min },
			fmt.Sprintf("must be greater than %v", min))
	}
	bound := int(math.Ceil(min))
	return validation.Min(bound, fmt.Sprintf("must be at least %d", bound))
}

func intUpperBound(max float64, exclusive bool) validation.Validator[int] {
	if exclusive {
		return validation.Custom(func(v int) bool { return float64(v) < max },
			fmt.Sprintf("must be less than %v", max))
	}
	bound := int(math.Floor(max))
	return validation.Max(bound, fmt.Sprintf("must be at most %d", bound))
}

func stringEnum(values []any) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func intEnum(values []any) []int {
	out := make([]int, 0, len(values))
	for _, v := range values {
		if n, ok := intValue(v); ok {
			out = append(out, n)
		}
	}
	return out
}

// intValue coerces the loosely typed numbers JSON and YAML decoding produce.
func intValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n == math.Trunc(n) {
			return int(n), true
		}
	}
	return 0, false
}

func floatValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
