package api

import "github.com/codeXAI06/ReliefLink/store"

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1000: "invalid api key",

		1010: "invalid parameters",
		1011: "cannot parse request",
		1012: "invalid coordinates",
		1013: "invalid help type",
		1014: "invalid urgency",

		1100: store.ErrPhoneTaken.Error(),
		1101: store.ErrHelperNotExist.Error(),
		1102: "unknown helper location",

		1200: store.ErrRequestNotExist.Error(),
		1201: store.ErrRequestStateChanged.Error(),
		1202: store.ErrInvalidTransition.Error(),
	}

	errorInternalServer = errorJSON(999)

	errorInvalidAPIKey = errorJSON(1000)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)
	errorInvalidCoordinates = errorJSON(1012)
	errorInvalidHelpType    = errorJSON(1013)
	errorInvalidUrgency     = errorJSON(1014)

	errorPhoneTaken            = errorJSON(1100)
	errorHelperNotFound        = errorJSON(1101)
	errorUnknownHelperLocation = errorJSON(1102)

	errorRequestNotFound     = errorJSON(1200)
	errorRequestStateChanged = errorJSON(1201)
	errorInvalidTransition   = errorJSON(1202)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
