// Package errors provides structured error types for the regkit library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: a register/field path, the
// field type involved, the offending value, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseValidate, errors.KindWidthMismatch).
//		Path("STATUS", "TEMP").
//		FieldType("float half").
//		Detail("field is 12 bits, half precision needs 16").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.BitOrder(path, 3, 7)
//	err := errors.ExceedsWidth(path, 35, 32)
//
// Validation reports keep hard errors and tolerated warnings in separate
// lists; both are *Error values, so severity is positional, not a field.
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
