// Package cli provides the interactive presale command-line client.
//
// It wires configuration, the local credential store, the backend API client,
// the wallet connector and the purchase services behind a small REPL. Startup
// restores a previous session when a credential is stored, then the user drives
// everything with commands:
//
//   - register / login / logout / whoami
//   - rates, currency <SYM>, amount <value>, quote
//   - connect, buy
//   - history
//   - admin (admins only)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
