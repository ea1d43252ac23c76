package response

const (
	MsgInvalidRequest     = "Invalid request body"
	MsgInvalidID          = "Invalid ID"
	MsgUnauthorized       = "Unauthorized"
	MsgInternal           = "Internal server error"
	MsgValidation         = "Validation failed"
	MsgInvalidCredentials = "Invalid credentials"
	MsgTooManyAttempts    = "Too many sign-in attempts, try again later"
	MsgUserExists         = "Username or email already exists."
	MsgNoFile             = "No file provided"
	MsgDuplicateBlogSlug  = "Blog post with this slug already exists"
	MsgBlogSlugImmutable  = "Cannot change post slug"
	MsgProjectSlugLocked  = "Cannot change project slug"
)

var (
	ErrInvalidRequestFormat = Error(MsgInvalidRequest)
	ErrInvalidID            = Error(MsgInvalidID)
	ErrUnauthorized         = Error(MsgUnauthorized)
	ErrInternal             = Error(MsgInternal)
	ErrAuthenticationFailed = Error(MsgInvalidCredentials)
	ErrTooManyAttempts      = Error(MsgTooManyAttempts)
	ErrUserAlreadyExists    = Error(MsgUserExists)
	ErrNoFile               = Error(MsgNoFile)
)
