package handler

// Request bodies. Validation mirrors the registration/login schema:
// a syntactically valid email and a password of at least 6 characters.

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type CreateTaskRequest struct {
	Name string `json:"name" validate:"required"`
}

// MessageResponse is the uniform error body.
type MessageResponse struct {
	Message string `json:"message"`
}
