package user

import (
	"fmt"
	"time"

	"github.com/quickdesk-io/quickdesk/internal/domain/shared/events"
	"github.com/quickdesk-io/quickdesk/internal/shared/authorization"
)

const (
	EventTypeUserRegistered  = "user.registered"
	EventTypeUserRoleChanged = "user.role_changed"
)

type UserRegisteredEvent struct {
	events.BaseEvent
	UserID uint                   `json:"user_id"`
	Email  string                 `json:"email"`
	Name   string                 `json:"name"`
	Role   authorization.UserRole `json:"role"`
}

func NewUserRegisteredEvent(u *User) *UserRegisteredEvent {
	return &UserRegisteredEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: fmt.Sprintf("user:%d", u.ID()),
			EventType:   EventTypeUserRegistered,
			OccurredAt:  time.Now(),
		},
		UserID: u.ID(),
		Email:  u.Email().String(),
		Name:   u.Name(),
		Role:   u.Role(),
	}
}

type UserRoleChangedEvent struct {
	events.BaseEvent
	UserID    uint                   `json:"user_id"`
	OldRole   authorization.UserRole `json:"old_role"`
	NewRole   authorization.UserRole `json:"new_role"`
	ChangedBy uint                   `json:"changed_by"`
}

func NewUserRoleChangedEvent(u *User, oldRole authorization.UserRole, changedBy uint) *UserRoleChangedEvent {
	return &UserRoleChangedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: fmt.Sprintf("user:%d", u.ID()),
			EventType:   EventTypeUserRoleChanged,
			OccurredAt:  time.Now(),
		},
		UserID:    u.ID(),
		OldRole:   oldRole,
		NewRole:   u.Role(),
		ChangedBy: changedBy,
	}
}
