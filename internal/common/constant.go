package common

// AuthorizationHeaderName is the HTTP header that carries the access token
// on authenticated requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the token value in the Authorization header.
const BearerPrefix = "Bearer "
