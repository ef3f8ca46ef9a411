package errors

// User-friendly error messages
const (
	MsgQueryFailed       = "Failed to fetch listings"
	MsgInvalidParameters = "The provided parameters are invalid. Please check your input and try again."
	MsgUpstreamMedia     = "Upstream error"
	MsgUpstreamAuth      = "Upstream authentication failed"
	MsgMediaNotFound     = "No photo found for this listing."
	MsgRateLimited       = "You're searching too quickly! Please wait a moment and try again."
	MsgInternalError     = "Internal Server Error"
)
