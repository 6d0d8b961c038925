package auth

import "strings"

// AllowList is the set of identities permitted to use the admin API.
// Matching is case-insensitive on the trimmed email.
type AllowList struct {
	emails map[string]struct{}
}

func NewAllowList(emails []string) *AllowList {
	al := &AllowList{emails: make(map[string]struct{}, len(emails))}
	for _, e := range emails {
		e = normalizeEmail(e)
		if e != "" {
			al.emails[e] = struct{}{}
		}
	}
	return al
}

func (a *AllowList) Allowed(email string) bool {
	if a == nil {
		return false
	}
	_, ok := a.emails[normalizeEmail(email)]
	return ok
}

func (a *AllowList) Len() int {
	if a == nil {
		return 0
	}
	return len(a.emails)
}

func normalizeEmail(e string) string {
	return strings.ToLower(strings.TrimSpace(e))
}
