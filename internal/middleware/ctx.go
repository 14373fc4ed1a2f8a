package middleware

type ContextKey string

const (
	ContextRequestID ContextKey = "request_id"
	ContextUserID    ContextKey = "user_id"
	ContextEmail     ContextKey = "email"
	ContextRole      ContextKey = "role"
)
