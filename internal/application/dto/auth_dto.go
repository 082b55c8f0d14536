package dto

// LoginRequest is the body of POST /api/auth/login. Password carries the 6-digit PIN.
type LoginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail"`
	Password        string `json:"password"`
}

// RefreshRequest is the body of POST /api/auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// LoginResponse carries the tokens issued by the user pool. Refresh never includes a refresh token.
type LoginResponse struct {
	AccessToken  string  `json:"accessToken"`
	IdToken      string  `json:"idToken"`
	RefreshToken *string `json:"refreshToken"`
	ExpiresIn    int32   `json:"expiresIn"`
	TokenType    string  `json:"tokenType"`
}

// MeResponse describes the caller.
type MeResponse struct {
	Username string   `json:"username"`
	Groups   []string `json:"groups"`
}
