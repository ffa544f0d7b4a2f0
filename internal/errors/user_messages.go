package errors

// User-friendly error messages
const (
	MsgInvalidParameters  = "The provided parameters are invalid. Please check your input and try again."
	MsgUnknownBorough     = "Unknown borough. Valid values are Bronx, Brooklyn, Queens, Manhattan and Staten Island."
	MsgListingNotFound    = "Listing not found. Please try a different listing."
	MsgServiceUnavailable = "We're unable to retrieve housing data right now. Please try again in a few minutes."
	MsgRateLimited        = "You're browsing too quickly! Please wait a moment and try again."
	MsgUnauthorized       = "You need to sign in to view the dashboard."
	MsgInvalidCredentials = "Incorrect password. Please try again."
	MsgInternalError      = "Something went wrong on our end. Please try again later."
)
