package web

// Identity describes the signed-in user, as far as templates care. The
// zero value is an anonymous visitor.
type Identity struct {
	LoggedIn    bool
	Username    string
	DisplayName string
	Role        string
}

// AuthState collapses the identity to the two-valued fact navigation
// rendering runs on.
func (id Identity) AuthState() AuthState {
	if id.LoggedIn {
		return Authenticated
	}
	return Anonymous
}

// Page wraps the shared Identity with page-specific Content for fragment
// templates.
type Page[T any] struct {
	Identity Identity
	Content  T
}
