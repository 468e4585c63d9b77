package dto

// LoginInput mirrors the OAuth2 password form: the username field carries the
// email address.
type LoginInput struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}
