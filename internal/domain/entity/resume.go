package entity

import (
	"time"

	"github.com/google/uuid"
)

// Resume is a single résumé document. It always belongs to exactly one User.
type Resume struct {
	ID        uuid.UUID
	UserID    uuid.UUID // Owner; every read and write is scoped by it.
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ResumePatch carries the optional fields of a partial résumé update.
// A nil field is left untouched.
type ResumePatch struct {
	Title   *string
	Content *string
}

// IsEmpty reports whether the patch would change nothing.
func (p ResumePatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil
}

// Apply copies the non-nil fields of the patch onto r.
func (p ResumePatch) Apply(r *Resume) {
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Content != nil {
		r.Content = *p.Content
	}
}
