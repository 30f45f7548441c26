package registry

import "strings"

// Alias is the parsed form of a versioned process alias string,
// "<processName>/<releaseTag>" (e.g. "default-booking/release-1").
type Alias struct {
	ProcessName string
	ReleaseTag  string
}

// ParseAlias splits an alias on the first "/". A bare process name parses to
// an Alias with an empty release tag. This is the single place alias strings
// are taken apart; callers must not split them ad hoc.
func ParseAlias(alias string) Alias {
	name, tag, _ := strings.Cut(alias, "/")
	return Alias{ProcessName: name, ReleaseTag: tag}
}

// String rebuilds the alias string.
func (a Alias) String() string {
	if a.ReleaseTag == "" {
		return a.ProcessName
	}
	return a.ProcessName + "/" + a.ReleaseTag
}
