// Package cmdtree turns a static, declarative tree of command descriptors into
// a cobra command hierarchy and routes one invocation to exactly one handler.
// Leaf commands carry positionals, flags and a handler; groups only scope
// their children and print help when invoked on their own.
package cmdtree
