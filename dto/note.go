package dto

// CreateNoteRequest carries a new note. Labels keep their request order;
// absence of labels stores an empty list, not null.
type CreateNoteRequest struct {
	Profile    string   `json:"profile" binding:"required"`
	TeamMember string   `json:"teamMember" binding:"required"`
	Email      string   `json:"email" binding:"required"`
	Content    string   `json:"content" binding:"required"`
	Labels     []string `json:"labels"`
}
