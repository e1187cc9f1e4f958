package dto

type LogActivityRequest struct {
	Email   string `json:"email" binding:"required"`
	Action  string `json:"action" binding:"required"`
	Profile string `json:"profile"`
}
