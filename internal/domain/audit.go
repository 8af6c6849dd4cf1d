package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditRecord logs a mutation event on a report or a match.
type AuditRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	EntityType EntityType
	EntityID   *uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}
