package common

import "strings"

const bearerPrefix = "Bearer "

// BearerToken returns the Authorization header value for a token. Stored
// tokens occasionally already carry the scheme, so the prefix is applied
// exactly once.
func BearerToken(token string) string {
	token = strings.TrimSpace(token)
	if len(token) == 0 {
		return ""
	}
	if strings.HasPrefix(token, bearerPrefix) {
		return token
	}
	return bearerPrefix + token
}

// StripBearer returns the raw token with any Authorization scheme removed.
func StripBearer(token string) string {
	return strings.TrimPrefix(strings.TrimSpace(token), bearerPrefix)
}
