package apperrors

import (
	"errors"
	"fmt"
)

// Resource names as they appear in user-facing messages.
const (
	ResourceBook          = "Book"
	ResourceUser          = "User"
	ResourceRequestedBook = "Requested book"
	ResourceMembership    = "Membership"
)

// NotFoundError reports that a primary-key lookup matched zero rows. It carries
// the resource kind and id as structured fields; the message text is produced
// only when the error is rendered at the HTTP edge.
type NotFoundError struct {
	Resource string
	ID       int
}

func NewNotFound(resource string, id int) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id: %d could not be found.", e.Resource, e.ID)
}

// AsNotFound returns the NotFoundError in err's chain, or nil.
func AsNotFound(err error) *NotFoundError {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return nf
	}
	return nil
}

func IsNotFound(err error) bool {
	return AsNotFound(err) != nil
}
