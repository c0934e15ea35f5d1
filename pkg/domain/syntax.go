package domain

import (
	"regexp"
	"strings"

	"github.com/apervushin/commons-validator/pkg/tld"
)

const (
	domainNameMax = 253 // characters, including any root dot
	labelMax      = tld.MaxLabelLen

	// RFC 2396 section 3.2.2; the toplabel grammar lives in package tld.
	//   domainlabel = alphanum | alphanum *( alphanum | "-" ) alphanum
	domainLabelPattern = `[a-zA-Z0-9](?:[-a-zA-Z0-9]*[a-zA-Z0-9])?`
)

var domainLabelRegex = regexp.MustCompile("^" + domainLabelPattern + "$")

// splitLabels parses an ASCII domain name into its labels, reporting false
// when the name is not syntactically valid. A multi-label name may end in a
// single root dot, which is not returned as a label. A single label is a
// host name (RFC 1123) and follows the domainlabel grammar; otherwise the
// rightmost label must be a toplabel and all others domainlabels.
func splitLabels(ascii string) ([]string, bool) {
	if ascii == "" || len(ascii) > domainNameMax {
		return nil, false
	}

	labels := strings.Split(ascii, ".")
	if n := len(labels); n > 2 && labels[n-1] == "" {
		labels = labels[:n-1]
	}

	if len(labels) == 1 {
		return labels, isDomainLabel(labels[0])
	}

	last := len(labels) - 1
	for _, label := range labels[:last] {
		if !isDomainLabel(label) {
			return nil, false
		}
	}
	if !tld.IsTopLabel(labels[last]) {
		return nil, false
	}
	return labels, true
}

func isDomainLabel(label string) bool {
	if label == "" || len(label) > labelMax {
		return false
	}
	return domainLabelRegex.MatchString(label)
}

// checkDomainSyntax reports whether an already normalized ASCII name is a
// syntactically valid domain or host name.
func checkDomainSyntax(ascii string) bool {
	_, ok := splitLabels(ascii)
	return ok
}
