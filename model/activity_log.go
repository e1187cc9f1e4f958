package model

import (
	"time"
)

// Activity log actions written by the service itself. The log-activity
// endpoint accepts arbitrary action tags on top of these.
const (
	ActionLogin         = "login"
	ActionAddNote       = "add_note"
	ActionDeleteNote    = "delete_note"
	ActionUpdateProfile = "update_profile"
)

// ActivityLog is one append-only audit entry. Profile may be empty for
// actions that are not tied to a profile (e.g. login).
type ActivityLog struct {
	Email     string    `bson:"email" json:"email"`
	Action    string    `bson:"action" json:"action"`
	Profile   string    `bson:"profile" json:"profile"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}
