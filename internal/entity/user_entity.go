// FILE: internal/entity/user_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string
type UserStatus string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"

	UserStatusActive  UserStatus = "active"
	UserStatusBlocked UserStatus = "blocked"
)

type User struct {
	Id           uuid.UUID
	Email        string
	PasswordHash *string
	FullName     string
	Role         UserRole
	Status       UserStatus

	// Billing state. Plan may be empty for accounts created before the
	// billing rollout; lookups fall back to the free plan definition.
	Plan         string
	BalanceCents int64

	// Monthly AI usage cycle. AiCycleStartedAt is nil until the first
	// billing-engine contact; it always holds a first-of-month marker.
	AiCycleStartedAt         *time.Time
	AiCycleRequests          int
	AiCycleAdviceRequests    int
	AiCycleAssistantRequests int

	CreatedAt time.Time
	UpdatedAt time.Time
}
