package constants

import "time"

// Context keys
const (
	ContextKeyScope = "auth_scope"
)

// Credential rules
const (
	MinPinLength = 4
)

// Join code settings
const (
	JoinCodeLength      = 6
	JoinCodeMaxAttempts = 10
)

// Auth endpoint rate limiting
const (
	AuthRateLimit  = 20
	AuthRateWindow = time.Minute
)
