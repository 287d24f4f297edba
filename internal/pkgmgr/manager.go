package pkgmgr

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Manager names a Node package manager binary.
type Manager string

const (
	NPM  Manager = "npm"
	Yarn Manager = "yarn"
)

// UserAgentEnv is set by npm, npx and yarn for every process they spawn.
const UserAgentEnv = "npm_config_user_agent"

// Agent is the package manager parsed from a user agent string.
type Agent struct {
	Manager Manager
	Version *semver.Version // nil when the agent did not carry a parsable version
}

// ParseAgent reads a user agent like "yarn/1.22.19 npm/? node/v20.11.0 linux x64".
// Anything not starting with "yarn" is treated as npm.
func ParseAgent(userAgent string) Agent {
	ua := strings.TrimSpace(userAgent)
	agent := Agent{Manager: NPM}
	if strings.HasPrefix(ua, "yarn") {
		agent.Manager = Yarn
	}

	first := strings.Fields(ua)
	if len(first) == 0 {
		return agent
	}
	name, version, ok := strings.Cut(first[0], "/")
	if !ok || Manager(name) != agent.Manager {
		return agent
	}
	if v, err := semver.NewVersion(strings.TrimPrefix(version, "v")); err == nil {
		agent.Version = v
	}
	return agent
}

// Detect returns yarn when userAgent starts with "yarn", npm otherwise.
func Detect(userAgent string) Manager {
	return ParseAgent(userAgent).Manager
}

// Resolve returns the configured manager when set, falling back to the
// detected one. Unknown configured values are an error.
func Resolve(configured, userAgent string) (Manager, error) {
	switch Manager(strings.ToLower(strings.TrimSpace(configured))) {
	case "":
		return Detect(userAgent), nil
	case NPM:
		return NPM, nil
	case Yarn:
		return Yarn, nil
	default:
		return "", fmt.Errorf("unsupported package manager %q: use %q or %q", configured, NPM, Yarn)
	}
}

// installVerb is the sub-command that adds packages for m.
func (m Manager) installVerb() string {
	if m == Yarn {
		return "add"
	}
	return "install"
}

func (m Manager) String() string { return string(m) }
