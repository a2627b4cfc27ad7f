package dto

import "donorhub/internal/domain"

type LoginRequestDTO struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
}

type LoginResponseDTO struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

type UserDTO struct {
	ID       string `json:"id" example:"user-1"`
	Username string `json:"username" example:"user"`
	Role     string `json:"role" example:"user"`
	Name     string `json:"name" example:"Demo Volunteer"`
}

func NewUserDTO(user *domain.User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
		Name:     user.Name,
	}
}
