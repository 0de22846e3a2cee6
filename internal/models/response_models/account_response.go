package response_models

type AuthResponse struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Token string `json:"token"`
}
