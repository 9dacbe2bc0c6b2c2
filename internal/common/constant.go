// Package common contains shared constants and sentinel errors used across
// mmrtools components.
package common

// DefaultServerName is the media repository server the tools target unless
// overridden by configuration.
const DefaultServerName = "mtx01.cc"

// Media purpose attribute values understood by the MMR admin API.
const (
	PurposePinned = "pinned"
	PurposeNone   = "none"
)

// AccessTokenQueryParam is the query parameter carrying the admin access
// token on outbound requests.
const AccessTokenQueryParam = "access_token"

// ForwardedHostHeader names the real server when requests go through a
// local reverse proxy.
const ForwardedHostHeader = "X-Forwarded-Host"
