package contextkeys

// Custom key type to avoid collisions with other context values.
type contextKey string

// IdentityContextKey is the key under which the authenticated identity
// is stored in the gin context by the auth middleware.
const IdentityContextKey = contextKey("identity")
