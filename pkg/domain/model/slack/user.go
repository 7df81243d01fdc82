package slack

// User is a workspace member as seen by the directory
type User struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	RealName    string `json:"real_name,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	IsBot       bool   `json:"is_bot"`
}

// Label returns the best human readable name of the user: display name,
// then real name, then account name, then the raw ID.
func (u *User) Label() string {
	switch {
	case u == nil:
		return ""
	case u.DisplayName != "":
		return u.DisplayName
	case u.RealName != "":
		return u.RealName
	case u.Name != "":
		return u.Name
	default:
		return u.ID
	}
}

// Directory maps user IDs to users. A Directory is a snapshot and is never
// patched after it is built.
type Directory map[string]*User

// Resolve returns the label of the user with the given ID, or the ID itself
// when the user is unknown.
func (d Directory) Resolve(id string) string {
	if u, ok := d[id]; ok {
		if label := u.Label(); label != "" {
			return label
		}
	}
	return id
}
