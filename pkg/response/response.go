package response

// Success envelope: {"data": ...}
type SuccessBody struct {
	Data interface{} `json:"data"`
}

// Error envelope: {"error": {"code", "message", "details"}}
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details"`
}

const (
	CodeBadRequest   = "BAD_REQUEST"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeInternal     = "INTERNAL"
)

func Success(data interface{}) SuccessBody {
	return SuccessBody{Data: data}
}

func Error(code, message string, details []string) ErrorBody {
	if details == nil {
		details = []string{}
	}
	return ErrorBody{Error: ErrorDetail{Code: code, Message: message, Details: details}}
}

// CodeForStatus maps an HTTP status to the envelope error code.
func CodeForStatus(status int) string {
	switch status {
	case 400:
		return CodeBadRequest
	case 401:
		return CodeUnauthorized
	case 403:
		return CodeForbidden
	case 404:
		return CodeNotFound
	case 409:
		return CodeConflict
	default:
		return CodeInternal
	}
}
