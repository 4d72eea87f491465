// Package errors provides the classified error primitives used across tagindex.
//
// A ClassifiedError carries a category (config, validation, filesystem, ...),
// a severity and structured context. The CLI adapter turns a category into a
// process exit code and a slog record.
//
// Example usage:
//
//	err := errors.InvalidInputError("pages must be a sequence").
//		WithContext("got", fmt.Sprintf("%T", v)).
//		Build()
package errors
