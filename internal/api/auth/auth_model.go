package auth

// LoginRequest represents the login request body.
type LoginRequest struct {
	Login  string `json:"login"`
	Secret string `json:"secret"`
}

// LoginResponse represents the login response body.
type LoginResponse struct {
	Token string `json:"token"`
}

// RegisterRequest represents the register request body.
type RegisterRequest struct {
	Login  string `json:"login"`
	Secret string `json:"secret"`
}

// RegisterResponse represents the register response body.
type RegisterResponse struct {
	ID    string `json:"id"`
	Login string `json:"login"`
}
