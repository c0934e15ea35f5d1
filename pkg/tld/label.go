package tld

import "regexp"

const (
	// MaxLabelLen is the longest label DNS allows, in octets.
	MaxLabelLen = 63

	// TopLabelPattern is the RFC 2396 section 3.2.2 toplabel grammar:
	//   toplabel = alpha | alpha *( alphanum | "-" ) alphanum
	TopLabelPattern = `[a-zA-Z](?:[-a-zA-Z0-9]*[a-zA-Z0-9])?`
)

var topLabelRegex = regexp.MustCompile("^" + TopLabelPattern + "$")

// IsTopLabel reports whether s, an ASCII label without dots, may appear as
// the rightmost label of a domain name. Case is ignored.
func IsTopLabel(s string) bool {
	if s == "" || len(s) > MaxLabelLen {
		return false
	}
	return topLabelRegex.MatchString(s)
}
