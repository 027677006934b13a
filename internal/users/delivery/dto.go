package delivery

import (
	"github.com/SlavaShagalov/camp-enroll/internal/models"
)

type CreateUserDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoUrl"`
}

type ChangeRoleDTO struct {
	Role models.Role `json:"role" validate:"required,oneof=none admin instructor"`
}

type UserExistsResponse struct {
	Message string      `json:"message"`
	User    models.User `json:"user"`
}

type UpdatedResponse struct {
	Updated int64 `json:"updated"`
}

type DeletedResponse struct {
	Deleted int64 `json:"deleted"`
}

type RoleCheckResponse map[string]bool
