// Package common contains shared constants and sentinel errors used across
// textfix components.
package common

// TokenMetadataKey is the client-side storage key under which the session
// credential is persisted.
const TokenMetadataKey = "jwt_token"

// AuthorizationHeaderName and BearerPrefix form the header that carries the
// access token on protected requests.
const (
	AuthorizationHeaderName = "Authorization"
	BearerPrefix            = "Bearer "
)

// MinPasswordLength is the shortest password accepted at signup.
const MinPasswordLength = 6
