package models

// SessionState is the gateway's view of the admin session, as reported to
// the UI. Tokens themselves never leave the token store through this shape.
type SessionState struct {
	Authenticated bool   `json:"authenticated"`
	LoggedUser    string `json:"loggedUser,omitempty"`
}

// TokenPair is the access/refresh pair issued by the identity provider.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// LoginInput carries admin credentials for the password grant.
type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
