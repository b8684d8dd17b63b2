package globals

// Context keys
type ContextKey string

const EmailKey ContextKey = "email"
const RequestIDKey ContextKey = "requestId"
