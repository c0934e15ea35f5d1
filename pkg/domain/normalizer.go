package domain

import (
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/net/idna"
)

// Full stops that RFC 3490 section 3.1 requires to be treated as label
// separators besides U+002E.
var separators = strings.NewReplacer(
	"。", ".", // ideographic full stop
	"．", ".", // fullwidth full stop
	"｡", ".", // halfwidth ideographic full stop
)

// profile maps and validates like idna.Lookup but without the UTS #46
// hyphen-position rule, so ASCII labels such as "r3---sn" convert the same
// way next to a Unicode label as they do alone.
var profile = idna.New(
	idna.MapForLookup(),
	idna.BidiRule(),
	idna.CheckHyphens(false),
)

// preservesTrailingDot reports whether the IDNA profile keeps a trailing
// root dot. Probed once; when it does, conversion output is used verbatim.
var preservesTrailingDot = sync.OnceValue(func() bool {
	out, err := profile.ToASCII("ä.")
	return err == nil && strings.HasSuffix(out, ".")
})

// UnicodeToASCII converts a domain name that may contain Unicode labels or
// non-ASCII full stops into its ASCII-compatible (punycode) form.
//
// It never fails: ASCII input is returned unchanged, and input the IDNA
// conversion rejects is returned as given so that syntax checking fails on
// it. The result is only a pre-pass for validation, never a validity signal.
func UnicodeToASCII(s string) string {
	if isASCII(s) {
		return s
	}

	dotted := separators.Replace(s)
	if isASCII(dotted) {
		return dotted
	}

	ascii, err := profile.ToASCII(dotted)
	if err != nil {
		return s
	}
	if preservesTrailingDot() {
		return ascii
	}

	// Restore a root dot the conversion dropped.
	if strings.HasSuffix(dotted, ".") && !strings.HasSuffix(ascii, ".") {
		return ascii + "."
	}
	return ascii
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
