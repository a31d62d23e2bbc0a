package constants

const (
	CookieKeyAuthToken = "auth_token"

	CtxKeyIdentity  = "identity"
	CtxKeyRequestID = "request_id"
)
