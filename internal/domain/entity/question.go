package entity

import (
	"time"

	"github.com/google/uuid"
)

// Question is a post opened by a user for others to answer.
// Title, Description and Tags may change after creation; AuthorID and
// DatePosted are set once and never modified.
type Question struct {
	ID          uuid.UUID `json:"id"`          // The unique identifier for the question.
	Title       string    `json:"title"`       // Short summary of the question.
	Description string    `json:"description"` // Full body text of the question.
	Tags        []string  `json:"tags"`        // Ordered list of tags. Replaced wholesale on update, never merged.
	AuthorID    uuid.UUID `json:"author_id"`   // The user who posted the question. Immutable.
	DatePosted  time.Time `json:"date_posted"` // Set at creation. Immutable.
}
