// Package meta provides functionality for carrying invocation metadata through context.
package meta

import (
	"context"
)

// ContextKey is a type for keys used in context values for metadata.
type ContextKey string

const (
	// TraceID represents a unique identifier for correlating logs and spans of one invocation.
	TraceID ContextKey = "trace_id"

	// OperationID identifies the use case being executed (e.g. "send_sps_pps").
	OperationID ContextKey = "operation_id"

	// InvocationID identifies a single execution of a use case.
	InvocationID ContextKey = "invocation_id"

	// DeviceID identifies the camera device an operation targets.
	DeviceID ContextKey = "device_id"

	// SessionID identifies the media session on the device.
	SessionID ContextKey = "session_id"

	// ServiceName identifies the name of current running service.
	ServiceName ContextKey = "service_name"

	// ServiceVersion indicates the version of the service.
	ServiceVersion ContextKey = "service_version"
)

//nolint:gochecknoglobals // fixed list of keys known to the extractor
var knownKeys = []ContextKey{
	TraceID,
	OperationID,
	InvocationID,
	DeviceID,
	SessionID,
	ServiceName,
	ServiceVersion,
}

// InjectMetaToContext adds metadata from the provided map to the context.
// It only adds values that are not empty strings and returns a new context
// with the added values.
func InjectMetaToContext(ctx context.Context, data map[ContextKey]string) context.Context {
	for k, v := range data {
		if v != "" {
			ctx = context.WithValue(ctx, k, v) //nolint:fatcontext // allow due to finite number of keys
		}
	}
	return ctx
}

// ExtractMetaFromContext extracts all metadata from the provided context.
// Only non-empty string values of the predefined keys are included in the returned map.
func ExtractMetaFromContext(ctx context.Context) map[ContextKey]string {
	data := make(map[ContextKey]string)
	for _, k := range knownKeys {
		if v, ok := ctx.Value(k).(string); ok && v != "" {
			data[k] = v
		}
	}
	return data
}

// Find returns the metadata value for key or an empty string.
func Find(ctx context.Context, key ContextKey) string {
	v, _ := ctx.Value(key).(string)
	return v
}
