// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// SubjectCtxKey is the key under which the auth middleware stores the
// subject of a verified panel token.
//
//	ctx := context.WithValue(ctx, utils.SubjectCtxKey, "panel")
var SubjectCtxKey = contextKey("subject")

// GetSubjectFromContext returns the authenticated token subject and whether
// it was present with the expected string type.
func GetSubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(SubjectCtxKey).(string)
	return subject, ok
}
