// Package schemafield constructs ready-to-use fields from OpenAPI schema
// constraints. Numeric bounds (including exclusive limits), length limits,
// patterns, and enums map onto the corresponding validators; the schema
// default seeds the field's persisted value. Only scalar schema types are
// supported: arrays and objects belong to the form composition layer.
package schemafield
