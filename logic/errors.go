package logic

import "fmt"

// Identity resolution failure kinds
const (
	ResolutionNotFound    = "not_found"    // peer answered, but no such account / no usable self link
	ResolutionUnreachable = "unreachable"  // network error or 5xx from the peer
	ResolutionMalformed   = "malformed"    // peer's response could not be interpreted
)

// ResolutionError tells why an identity could not be resolved. Kind
// distinguishes definitive failures from transient ones.
type ResolutionError struct {
	Kind string
	Ref  string // the handle or URL being resolved
	Err  error
}

func (e *ResolutionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("resolving %s: %s", e.Ref, e.Kind)
	}
	return fmt.Sprintf("resolving %s: %s: %v", e.Ref, e.Kind, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// Signature verification failure kinds
const (
	VerifUnsigned          = "unsigned"
	VerifActorUnresolvable = "actor_unresolvable"
	VerifInvalidSignature  = "invalid_signature"
	VerifStaleTimestamp    = "stale_timestamp"
	VerifDigestMismatch    = "digest_mismatch"
)

// VerificationError is a request that failed HTTP signature checks. It is
// not a server-side error; the caller turns it into a 4xx.
type VerificationError struct {
	Kind   string
	Detail string
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("signature verification failed: %s: %s", e.Kind, e.Detail)
}

// Inbound processing rejection kinds
const (
	ProcUnsupportedType   = "unsupported_type"
	ProcMalformedActivity = "malformed_activity"
	ProcTargetNotLocal    = "target_not_local"
)

// ProcessingError is a benign rejection of an inbound activity. It gets
// recorded on the activity row and acknowledged with a 2xx, never a 4xx.
type ProcessingError struct {
	Kind   string
	Detail string
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// Delivery failure kinds
const (
	DeliveryTransient = "transient"         // network error, timeout or 5xx; worth retrying
	DeliveryPermanent = "permanent"         // the peer rejected the request with a 4xx
	DeliveryExhausted = "exhausted_retries" // retry cap reached
)

// DeliveryError is a failed POST to one inbox. Kind drives the retry policy.
type DeliveryError struct {
	Kind  string
	Inbox string
	Err   error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivery to %s failed (%s): %v", e.Inbox, e.Kind, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
