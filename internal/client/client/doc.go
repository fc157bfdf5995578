// Package client contains the client-side building blocks that talk to the
// presale backend.
//
// # Overview
//
//  1. A transport-agnostic contract (Client) covering register, login,
//     profile, purchase submission, purchase history and the admin summary.
//  2. HTTPClient, the REST implementation. It holds the current bearer
//     credential and attaches it to every request while one is set.
//  3. InitDatabase / RunMigrations, which open the local SQLite file that
//     keeps the credential across restarts.
//
// # Error Handling
//
// Non-2xx responses become *APIError carrying the backend's "detail" text.
// Failures to reach the backend become *TransportError. Both match
// common.ErrNetwork via errors.Is; status-specific matches are available
// through ErrUnauthorized, ErrForbidden and ErrUnavailable.
//
// No timeout is applied unless the caller's context carries one or the
// client was built with a non-zero timeout.
package client
