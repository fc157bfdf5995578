// Package common contains shared constants and sentinel errors used across
// presale components.
package common

// AuthorizationHeaderName is the HTTP header that carries the bearer credential
// on outbound requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the credential inside the Authorization header.
const BearerPrefix = "Bearer "

// AccessTokenMetadataKey is the key of the durable slot that holds the
// client's credential.
const AccessTokenMetadataKey = "access_token"

// PurchaseStatusPending is the status every purchase record is created with.
const PurchaseStatusPending = "pending"

// RoleAdmin is the role claim that grants access to the admin summary.
const RoleAdmin = "admin"

// RoleUser is the default role claim.
const RoleUser = "user"
