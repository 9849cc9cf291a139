package dto

import (
	"time"

	"github.com/ecem/goodworks/internal/app/models"
)

// CreateMemberRequest represents member registration data
type CreateMemberRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Role     string `json:"role" binding:"omitempty,oneof=member leader moderator admin"`
}

// UpdateMemberRequest represents member update data; omitted fields are kept
type UpdateMemberRequest struct {
	Username *string `json:"username" binding:"omitempty,min=3,max=50"`
	Password *string `json:"password" binding:"omitempty,min=6"`
	FullName *string `json:"fullName"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Role     *string `json:"role" binding:"omitempty,oneof=member leader moderator admin"`
}

// MemberResponse represents member information. The password hash never
// leaves the server.
type MemberResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// MemberDetailResponse extends MemberResponse with contribution totals
type MemberDetailResponse struct {
	MemberResponse
	WorksCount         int `json:"worksCount"`
	TotalBeneficiaries int `json:"totalBeneficiaries"`
}

// NewMemberResponse maps a user model to its API shape
func NewMemberResponse(u *models.User) MemberResponse {
	return MemberResponse{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}
