package request

import (
	"lendhub/internal/domain/user"
)

type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

func (r UpdateUserRequest) ToPatch() user.Patch {
	return user.Patch{
		Name:  r.Name,
		Email: r.Email,
	}
}
