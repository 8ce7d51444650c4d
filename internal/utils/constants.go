package utils

// Application Constants
const (
	AppName    = "RideAdmin"
	AppVersion = "1.0.0"

	DefaultReason = "No reason provided"

	// Enrichment fan-out per request
	MaxConcurrentEnrichment = 16
)

// Response messages
const (
	MsgNoUsersFound       = "No users found."
	MsgUserNotFound       = "User not found."
	MsgNoRidesFound       = "No rides found."
	MsgNoEmergenciesFound = "No emergencies found."
	MsgNoFraudsFound      = "No frauds found."
	MsgControlsNotFound   = "Controls not found."
	MsgUserBanned         = "User banned successfully"
	MsgUserUnbanned       = "User unbanned successfully"
	MsgInvalidRequestBody = "Invalid request body"
)

// Error Messages
const (
	ErrInternalServer = "Internal server error"
)

// Real-time events
const (
	EventNewEmergency = "newEmergency"
)
