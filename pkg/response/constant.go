package response

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	InternalServerErrorCode = 500

	// Brazilian display formats.
	DateFormat     = "02/01/2006"
	DateTimeFormat = "02/01/2006 15:04:05"
)
