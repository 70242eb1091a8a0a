// Package validation binds echo requests and validates them with
// go-playground/validator, turning failures into field-level errors.
package validation
