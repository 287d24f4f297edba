// Package pkgmgr detects the Node package manager the CLI was launched with
// and drives it: installing packages into a project directory, reinstalling
// from scratch, and running project-local tools. Child processes stream their
// output to the terminal and a non-zero exit code is returned as a
// *ProcessError so the CLI can exit with the same code.
package pkgmgr
