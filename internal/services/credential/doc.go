// Package credential offers a small convenience layer over a credential
// store: string-in/string-out access for password secrets plus display
// fingerprints that never expose the secret itself.
package credential
