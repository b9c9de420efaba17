package models

// User is the sign-up payload. Events holds ids of events already owned by
// the user; it is empty for a fresh registration.
type User struct {
	Email        string   `json:"email"`
	Organisation string   `json:"organisation"`
	LeadName     string   `json:"leadName"`
	Password     string   `json:"password"`
	Events       []string `json:"events"`
}

// LoginRequest is the credential pair sent to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token issued on successful login.
type LoginResponse struct {
	Token string `json:"token"`
}
