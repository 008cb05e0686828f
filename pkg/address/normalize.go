package address

import "strings"

// separator joins list entries. Mailgun expects no whitespace after the comma.
const separator = ","

// Format renders a single Address as "Name <address>", or the bare address when Name is empty.
// Returns false when the Address has no usable email address.
func Format(a Address) (string, bool) {
	if a.Address == "" {
		return "", false
	}
	if a.Name == "" {
		return a.Address, true
	}
	return a.Name + " <" + a.Address + ">", true
}

// Normalize collapses any Value into the single comma-joined string form.
//
// Strings are returned unchanged. Objects render through Format. Lists render
// each entry independently, drop entries without an address and join the rest
// in input order. Entries that drop out leave no placeholder, so a list where
// nothing survives yields an empty string.
func Normalize(v Value) string {
	switch v.kind {
	case KindString:
		return v.raw
	case KindObject:
		s, _ := Format(v.addr)
		return s
	case KindList:
		return strings.Join(v.Entries(), separator)
	default:
		return ""
	}
}
