package constants

// Provider error codes
const (
	ErrCodeNetworkError      = "NETWORK_ERROR"
	ErrCodeFaultResponse     = "FAULT_RESPONSE"
	ErrCodeInvalidDataFormat = "INVALID_DATA_FORMAT"
)

// ErrMsgInternal is the only message ever returned to a client for a
// non bad-request failure.
const ErrMsgInternal = "Oops! Sorry! Something went wrong. Please contact your administrator."

// Validation messages
const (
	ErrMsgOriginRequired      = "Origin is required"
	ErrMsgDestinationRequired = "Destination is required"
	ErrMsgDayOfWeekRange      = "DayOfWeek must be between 0-6"
)
