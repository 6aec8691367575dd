// Package errors provides the classified error type used across clblogs.
//
// A ClassifiedError carries a category (config, validation, content, ...),
// a severity and structured context. The CLI adapter turns categories into
// process exit codes so commands can simply return errors.
//
// Example usage:
//
//	err := errors.NewError(errors.CategoryContent, "sidebar prefix has no directory").
//		WithContext("prefix", "/blogs-main/rust/").
//		Build()
package errors
