package errors

// Messages for standardized error responses
const (
	MsgBadRequest       = "bad request"
	MsgNotFound         = "resource not found"
	MsgUnprocessable    = "unprocessable"
	MsgInternalError    = "internal server error"
	MsgMethodNotAllowed = "method not allowed"
)
