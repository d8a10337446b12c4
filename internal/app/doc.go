// Package app wires application dependencies for the CLI.
//
// It loads Config from the environment, builds the logger and the selected
// credential store, and exposes them via the Wire struct for commands to use.
package app
