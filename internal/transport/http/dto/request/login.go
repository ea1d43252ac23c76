package request

type SignInRequest struct {
	// Identifier is a username or an email.
	Identifier  string `json:"identifier" validate:"required"`
	Password    string `json:"password" validate:"required"`
	CallbackURL string `json:"callbackUrl,omitempty"`
}
