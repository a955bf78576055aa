package dto

type CredentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserDTO struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

type LoginResponse struct {
	Message string  `json:"message"`
	User    UserDTO `json:"user"`
	Token   string  `json:"token"`
}
