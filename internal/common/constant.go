// Package common contains shared constants and sentinel errors used across
// authkeeper components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests to the identity backend.
const AccessTokenHeaderName = "access_token"
