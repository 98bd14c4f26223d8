package service

import "github.com/google/uuid"

// IsOwner reports whether the acting user is the recorded author of a
// resource. Strict equality, no role-based override. Questions and answers
// share this single check for their update and delete paths.
func IsOwner(resourceAuthorID, actorID uuid.UUID) bool {
	return resourceAuthorID == actorID
}
