// Package platform hides the few filesystem differences between Unix and
// Windows that scaffolding runs into: permission bits on secret files and the
// .cmd shims npm installs for project-local binaries on Windows.
package platform
