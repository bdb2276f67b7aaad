package inventory

import "errors"

var (
	// ErrPhoneNotFound is returned when a referenced phone ID does not
	// exist in the store.
	ErrPhoneNotFound = errors.New("phone not found")

	// ErrNoHiddenColumns signals a benign no-op: a show-hidden-column
	// request when every column is already visible. Callers render it as
	// an informational notice, not a failure.
	ErrNoHiddenColumns = errors.New("all columns already visible")
)
