package auth

// Principal is the identity derived from a request's token for the duration
// of that request. It is constructed once by the authentication middleware
// and passed by value into handlers; it is never persisted.
//
// A request without a valid token still carries a Principal, with
// Authenticated false.
type Principal struct {
	Username      string
	Authenticated bool
}
