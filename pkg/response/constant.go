package response

const (
	MessageSuccess = "Success"

	InternalServerErrorCode = 500
	DefaultErrorMessage     = "Something went wrong, please try again later"
)
