// Package store provides concrete credential store implementations and the
// registry through which they are discovered by algorithm name.
//
// All stores satisfy domain.CredentialStore and serialize access with an
// internal mutex, held across file I/O so loads and flushes are atomic with
// respect to concurrent reads and writes. The package includes:
//
//   - PropertiesStore: alias=secret pairs persisted to a flat property file
//   - KeyringStore: entries held in the operating system keyring
//   - MemoryStore: map-only store for tests and embedding
package store
