package usecase

// Сообщения об ошибках, которые получает клиент
const (
	MsgURLRequired        = "URL is required"
	MsgInvalidURL         = "Invalid URL"
	MsgInvalidShortURL    = "Invalid Short URL"
	MsgCustomIDLogin      = "Login required to create a custom short URL"
	MsgCustomIDRequired   = "Custom ID is required"
	MsgCustomIDFormat     = "Custom ID must be 3-30 characters long and contain only letters, numbers, '-' and '_'"
	MsgCustomIDReserved   = "Custom ID is reserved"
	MsgCustomIDExists     = "Custom ID already exists"
	MsgUserExists         = "User already exists"
	MsgInvalidCredentials = "Email or password is invalid"
	MsgEmailNotVerified   = "Please verify your email address before logging in"
	MsgUserNotFound       = "User not found"
	MsgInvalidVerifyToken = "Invalid or expired verification token"
	MsgAlreadyVerified    = "Email is already verified"
	MsgWrongPassword      = "Current password is incorrect"
	MsgSamePassword       = "New password must be different from the current password"
	MsgInvalidResetToken  = "Invalid or expired reset token"
	MsgEmailSendFailed    = "Failed to send email, please try again later"
)
