// Package cli declares the semi-cli command tree and its handlers. The tree
// itself is plain data handed to cmdtree; handlers only translate arguments
// and configuration into calls on the scaffold and pkgmgr packages and
// report the outcome.
package cli
