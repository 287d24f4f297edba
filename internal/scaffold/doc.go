// Package scaffold generates new Semi projects. It powers the "create"
// command: it prepares the project directory, writes the root and backend
// manifests from code and the TypeScript stubs from embedded templates, and
// installs every dependency through the configured package manager. The
// user picks the optional backend modules (express, auth, mongoose, redis)
// through a Confirmer.
package scaffold
