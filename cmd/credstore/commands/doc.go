// Package commands defines the credstore CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - store        Save a secret under an alias
//   - retrieve     Print the secret stored under an alias
//   - remove       Delete the entry stored under an alias
//   - aliases      List every stored alias
//   - fingerprint  Print a short digest of a stored secret
//
// # Implementation
//
// The root command reads defaults from the environment, applies flag
// overrides and builds the store, service and logger before any subcommand
// runs, so handlers share one app context. Mutating commands flush the store
// before returning.
package commands
