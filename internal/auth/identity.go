package auth

// Identity is the authenticated user a request acts on behalf of. It is
// resolved once by the auth middleware and passed explicitly to every
// service call.
type Identity struct {
	UserID   uint
	Username string
}
