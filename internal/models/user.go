package models

// Admin represents the operator signed into the console
type Admin struct {
	Username string `json:"username"`
	Password string `json:"-"` // bcrypt hash, never exposed in JSON
}

// LoginRequest represents login request body
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AdminResponse is what we send to clients after login
type AdminResponse struct {
	Username string `json:"username"`
	Token    string `json:"token,omitempty"`
}

// ToResponse converts Admin to AdminResponse
func (a *Admin) ToResponse(token string) AdminResponse {
	return AdminResponse{
		Username: a.Username,
		Token:    token,
	}
}
