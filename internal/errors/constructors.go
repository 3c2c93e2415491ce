package errors

import "io/fs"

// Convenience functions for common error patterns

// Config errors

// ConfigNotFound wraps fs.ErrNotExist so callers can test with errors.Is.
func ConfigNotFound(path string) *BuildError {
	return Wrap(fs.ErrNotExist, CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigRequired(field string) *BuildError {
	return New(CategoryConfig, SeverityFatal, "required configuration missing: "+field).
		WithContext("field", field)
}

func ValidationFailed(field, reason string) *BuildError {
	return New(CategoryValidation, SeverityFatal, "validation failed: "+field+": "+reason).
		WithContext("field", field).
		WithContext("reason", reason)
}

// Pipeline errors

func DiscoveryFailed(locale string, cause error) *BuildError {
	return Wrap(cause, CategoryDiscovery, SeverityFatal, "fragment discovery failed").
		WithContext("locale", locale)
}

// ParseFailed reports a malformed fragment; the file path is part of the message.
func ParseFailed(file string, cause error) *BuildError {
	return Wrap(cause, CategoryParse, SeverityFatal, "malformed fragment").
		WithContext("file", file)
}

// TransformFailed keeps the transformer error as Cause, unchanged.
func TransformFailed(file string, cause error) *BuildError {
	return Wrap(cause, CategoryTransform, SeverityFatal, "markdown transform failed").
		WithContext("file", file)
}

func FileSystemError(operation, path string, cause error) *BuildError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, operation+" failed").
		WithContext("operation", operation).
		WithContext("file", path)
}

func BuildFailed(stage string, cause error) *BuildError {
	return Wrap(cause, CategoryBuild, SeverityFatal, "build failed").
		WithContext("stage", stage)
}

// Internal errors

func InternalError(message string, cause error) *BuildError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
