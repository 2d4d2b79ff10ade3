package handler

const (
	errInternalServer     = "Internal server error"
	errUnauthorized       = "Unauthorized"
	errInvalidCredentials = "Invalid credentials."
	errTokenInvalid       = "Token is invalid or expired"
	errNoteNotFound       = "Note not found"

	detailLoggedOut       = "Successfully logged out"
	detailResetSent       = "Password reset email has been sent."
	detailResetFailed     = "Failed to send password reset email."
	detailUnknownEmail    = "User with this email does not exist."
	detailUserNotFound    = "User not found."
	detailInvalidToken    = "Invalid token."
	detailPasswordMissing = "New password is required."
	detailResetDone       = "Password has been reset successfully."
)
