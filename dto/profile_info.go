package dto

// UpdateProfileInfoRequest replaces the whole ProfileInfo record for a
// profile. The email field doubles as the actor identity for the audit
// entry, matching the gate's reading of the body.
type UpdateProfileInfoRequest struct {
	Profile   string `json:"profile" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Phone     string `json:"phone"`
	Languages string `json:"languages"`
}
