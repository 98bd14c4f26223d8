package entity

import (
	"time"

	"github.com/google/uuid"
)

// Answer is a reply to a question. QuestionID is a non-owning reference: the
// system does not verify it points at an existing question, and deleting a
// question leaves its answers in place. Only Body may change after creation.
type Answer struct {
	ID         uuid.UUID `json:"id"`          // The unique identifier for the answer.
	QuestionID uuid.UUID `json:"question_id"` // The question this answer replies to. Unchecked reference, no cascade.
	AuthorID   uuid.UUID `json:"author_id"`   // The user who posted the answer. Immutable.
	Body       string    `json:"body"`        // The answer text.
	DatePosted time.Time `json:"date_posted"` // Set at creation. Immutable.
}
