// Package pkgjson models the package.json manifests written into generated
// projects. It encodes them deterministically and validates them against an
// embedded JSON Schema so scaffolding can report malformed output as warnings.
package pkgjson
