// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInvalidRequest,
//	    "failed to parse client profile",
//	    parseErr,
//	    map[string]any{
//	        "field": "e5_propensity",
//	        "value": raw,
//	    },
//	)
package errors
