package pkgjson

// PackageJSON is the subset of package.json fields the scaffolder writes.
// Field order here is the order in the written file.
type PackageJSON struct {
	Name        string            `json:"name"`
	Version     string            `json:"version"`
	Main        string            `json:"main,omitempty"`
	Description string            `json:"description,omitempty"`
	License     string            `json:"license"`
	Prettier    *Prettier         `json:"prettier,omitempty"`
	Scripts     map[string]string `json:"scripts,omitempty"`
}

// Prettier is the inline prettier configuration of the project root.
type Prettier struct {
	TrailingComma string `json:"trailingComma"`
	TabWidth      int    `json:"tabWidth"`
	Semi          bool   `json:"semi"`
	SingleQuote   bool   `json:"singleQuote"`
}
