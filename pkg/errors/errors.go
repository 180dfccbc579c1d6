package errors

import (
	"fmt"

	"github.com/bazaarph/marketplace-api/internal/domain"
)

// ErrNotFound indicates a requested resource does not exist
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrUnauthorized indicates a failed authentication attempt
type ErrUnauthorized struct {
	Message string
}

func (e *ErrUnauthorized) Error() string {
	return e.Message
}

// ErrInvalidStatusTransition indicates a disallowed shipment status change
type ErrInvalidStatusTransition struct {
	From domain.ShipmentStatus
	To   domain.ShipmentStatus
}

func (e *ErrInvalidStatusTransition) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

// ErrUnmappedStatus indicates a legacy status value with no entry in the
// normalization table. It means the enum and the table drifted apart, which
// is a defect, not a recoverable condition.
type ErrUnmappedStatus struct {
	Status domain.LegacyStatus
}

func (e *ErrUnmappedStatus) Error() string {
	return fmt.Sprintf("unmapped legacy status: %q", e.Status)
}
