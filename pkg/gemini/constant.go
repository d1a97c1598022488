package gemini

import "time"

const (
	DefaultModel   = "gemini-2.5-flash"
	DefaultAPIURL  = "https://generativelanguage.googleapis.com/v1beta"
	DefaultTimeout = 60 * time.Second

	// MIMETypeJSON asks the model for a JSON document constrained by ResponseSchema.
	MIMETypeJSON = "application/json"

	RoleUser  = "user"
	RoleModel = "model"

	headerAPIKey = "x-goog-api-key"
	maxErrorBody = 64 << 10
)
