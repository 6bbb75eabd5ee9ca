package response

var (
	ErrInvalidRequestFormat = Error("Invalid request format")
	ErrInternal             = Error("Internal server error")

	ErrNoTokenProvided   = Error("No token provided")
	ErrFailedToAuthToken = Error("Failed to authenticate token")
	ErrAdminRequired     = Error("Admin access required")
	ErrUserRequired      = Error("User account required")

	ErrPostNotFound    = Error("Post not found")
	ErrCommentNotFound = Error("Comment not found")
	ErrUserNotFound    = Error("User not found")

	ErrInvalidCredentials = Error("Invalid credentials.")
	ErrUserAlreadyExists  = Error("Username or email already exists.")
	ErrCategoryExists     = Error("Category already exists")
	ErrAlreadyLiked       = Error("You have already liked this post.")
	ErrPasswordTooLong    = Error("Password must be at most 72 bytes")

	ErrFileTooLarge    = Error("File too large")
	ErrUnsupportedFile = Error("Unsupported file type")
	ErrInvalidTime     = Error("Invalid date format")
)
