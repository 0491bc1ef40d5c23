package httputil

// ContextKey is the type for keys the backend sets on request contexts.
type ContextKey string

// ContextURL is the context key for the base URL the API is served on.
const ContextURL ContextKey = "cashcard-backend-url"
