package auth

// ValidationError is returned for user input that cannot be accepted.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// InvalidUserIDMessage is shown when the login input is not a number.
const InvalidUserIDMessage = "Enter a valid numeric user ID"
