package literal

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// CompileRegExp compiles the raw body of a REGEXP token, as scanned between
// the delimiting slashes, under its flag characters. The stdlib regexp
// package speaks RE2 and cannot express backreferences or lookarounds, so the
// ECMAScript dialect of regexp2 is used.
//
// The g, y and d flags change match iteration and result shape, not pattern
// compilation, so they are accepted and left to the caller.
func CompileRegExp(body, flags string) (*regexp2.Regexp, error) {
	opts := regexp2.RegexOptions(regexp2.ECMAScript)
	seen := map[rune]bool{}
	for _, f := range flags {
		if seen[f] {
			return nil, fmt.Errorf("duplicate regular expression flag %q", f)
		}
		seen[f] = true
		switch f {
		case 'i':
			opts |= regexp2.IgnoreCase
		case 'm':
			opts |= regexp2.Multiline
		case 's':
			opts |= regexp2.Singleline
		case 'u', 'v':
			opts |= regexp2.Unicode
		case 'g', 'y', 'd':
			// no compilation option
		default:
			return nil, fmt.Errorf("invalid regular expression flag %q", f)
		}
	}
	re, err := regexp2.Compile(body, opts)
	if err != nil {
		return nil, fmt.Errorf("invalid regular expression /%s/%s: %w", body, flags, err)
	}
	return re, nil
}
