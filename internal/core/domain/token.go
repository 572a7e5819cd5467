package domain

// TokenPair is the transient result of a successful Register, Login or Refresh:
// a short-lived signed access token plus a long-lived opaque refresh token.
// Pairs are produced fresh on every call and never reused.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
