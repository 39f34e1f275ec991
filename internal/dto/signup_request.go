// File: internal/dto/signup_request.go
package dto

// IsActive 與 IsStaff 未提供時分別預設 true / false
// swagger:model dto.SignupRequest
type SignupRequest struct {
	Username string `json:"username" form:"username" validate:"required,max=25" example:"alice"`
	Email    string `json:"email" form:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" form:"password" validate:"required,max=72" example:"Secret123!"`
	IsActive *bool  `json:"is_active,omitempty" form:"is_active" example:"true"`
	IsStaff  *bool  `json:"is_staff,omitempty" form:"is_staff" example:"false"`
}
