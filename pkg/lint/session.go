package lint

import (
	"strconv"
	"strings"

	"github.com/yaklabco/nixlint/pkg/config"
)

// Version is a Nix language version, compared by major then minor.
type Version struct {
	Major int
	Minor int
}

// ParseVersion parses "major.minor" (trailing components ignored).
// Returns (zero, false) for unparseable input.
func ParseVersion(s string) (Version, bool) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) < 2 {
		return Version{}, false
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return Version{}, false
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return Version{}, false
	}
	return Version{Major: major, Minor: minor}, true
}

// AtLeast reports whether v is at least major.minor.
func (v Version) AtLeast(major, minor int) bool {
	if v.Major != major {
		return v.Major > major
	}
	return v.Minor >= minor
}

// String renders the version as "major.minor".
func (v Version) String() string {
	return strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor)
}

// Session is the read-only context for one linting pass: pass-wide facts a
// rule may consult but never mutate. It is constructed once per pass,
// immutable thereafter, and safe to share across concurrent invocations.
type Session struct {
	// NixVersion is the targeted Nix version. Rules checking constructs
	// that are only legal (or only deprecated) from some version on gate
	// on it via AtLeast.
	NixVersion Version

	// versionKnown records whether a version was configured at all.
	versionKnown bool
}

// NewSession builds a Session from configuration. An absent or unparseable
// nix_version means "latest": every version gate passes.
func NewSession(cfg *config.Config) *Session {
	sess := &Session{}
	if cfg == nil {
		return sess
	}
	if v, ok := ParseVersion(cfg.NixVersion); ok {
		sess.NixVersion = v
		sess.versionKnown = true
	}
	return sess
}

// TargetsAtLeast reports whether the session targets at least the given
// version. Unconfigured sessions target the latest version.
func (s *Session) TargetsAtLeast(major, minor int) bool {
	if !s.versionKnown {
		return true
	}
	return s.NixVersion.AtLeast(major, minor)
}
