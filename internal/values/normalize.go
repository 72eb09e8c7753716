package values

import "golang.org/x/text/unicode/norm"

// normalizeLabel puts a nominal/enumeration label into NFC form before it
// is used as a map key or compared, so that two labels that render
// identically but use different combining-character sequences are
// treated as the same domain element.
func normalizeLabel(s string) string {
	return norm.NFC.String(s)
}
