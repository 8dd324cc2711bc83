package entity

// Identity is the authenticated caller as resolved by the identity provider.
type Identity struct {
	UserID   string // Provider-issued subject.
	Email    string
	Name     string
	ImageURL string
	IsAdmin  bool
}
