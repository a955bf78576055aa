package credential

const (
	MsgMissingFields = "Email and password are required"
	msgEmailTaken    = "User with this email already exists"
	msgInvalidLogin  = "Invalid email or password"
)
