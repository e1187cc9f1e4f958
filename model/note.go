package model

import (
	"time"
)

// Note is a free-text note recorded against a profile. Notes are immutable
// after creation; LastEditedBy is set once to the author email at insert.
type Note struct {
	ID           string    `bson:"_id" json:"id"`
	Profile      string    `bson:"profile" json:"profile"`
	TeamMember   string    `bson:"team_member" json:"teamMember"`
	Email        string    `bson:"email" json:"email"`
	Content      string    `bson:"content" json:"content"`
	Labels       []string  `bson:"labels" json:"labels"`
	Timestamp    time.Time `bson:"timestamp" json:"timestamp"`
	LastEditedBy string    `bson:"last_edited_by" json:"lastEditedBy"`
}
