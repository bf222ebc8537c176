// Package ucdef defines use case definitions that are used across the application.
package ucdef

import "context"

// Use case types.
const (
	TypeBackgroundAction = "background_action"
)

// BackgroundAction represents a business operation that is executed off the caller's
// thread and whose single outcome is delivered back asynchronously. It is the body of
// an asynchronous use case: it receives fully validated parameters and performs the
// blocking work (typically a call to a device repository).
//
// Type parameters:
//   - P: Parameters type (an immutable value built by a named factory)
//   - R: Result type (delivered exactly once on success)
//
// Examples: SendSpsPps, RequestKeyFrame, ReadDeviceInfo
//
// Characteristics:
//   - Runs on a background scheduler, never on the caller's or the delivery thread
//   - Produces at most one value or one error
//   - Must honour ctx cancellation cooperatively
//   - Holds no per-invocation state; one instance serves concurrent invocations
//   - Retry, backoff and timeouts belong to the collaborators it calls, not to it
type BackgroundAction[P, R any] interface {
	// OperationID returns a unique identifier for the use case.
	OperationID() string

	// Run performs the operation for the given parameters.
	Run(ctx context.Context, params P) (R, error)
}
