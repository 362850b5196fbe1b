package entity

// ClientIdentity is one (name, email) pair as it appears on warranty lines.
// Both halves are stored trimmed; email may be empty.
type ClientIdentity struct {
	Name  string `json:"client_name"`
	Email string `json:"client_email"`
}

// ClientGroup merges several client identities under one canonical client.
// Grouping is display-only state: the warranty lines themselves are never
// rewritten.
type ClientGroup struct {
	ID             int              `json:"id"`
	CanonicalName  string           `json:"canonical_name"`
	CanonicalEmail string           `json:"canonical_email"`
	CanonicalPhone string           `json:"canonical_phone"`
	Members        []ClientIdentity `json:"members"`
}
