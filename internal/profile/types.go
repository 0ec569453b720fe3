package profile

// Profile represents a single Git identity profile.
// Empty fields mean the profile does not configure that key.
type Profile struct {
	Name   string // user.name
	Email  string // user.email
	Editor string // core.editor
}

// IsEmpty reports whether the profile configures nothing at all.
func (p Profile) IsEmpty() bool {
	return p.Name == "" && p.Email == "" && p.Editor == ""
}
