package model

// UserPatch carries the optional fields of an admin update. Nil means "leave
// as is".
type UserPatch struct {
	Username *string
	Email    *string
	Enabled  *bool
	IsAdmin  *bool
}

func (p UserPatch) IsEmpty() bool {
	return p.Username == nil && p.Email == nil && p.Enabled == nil && p.IsAdmin == nil
}

// Apply yields the patched user state. Pure: no storage concerns, timestamps
// are advanced by the store on write.
func (p UserPatch) Apply(u User) User {
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Email != nil {
		u.Email = p.Email
	}
	if p.Enabled != nil {
		u.Enabled = *p.Enabled
	}
	if p.IsAdmin != nil {
		u.IsAdmin = *p.IsAdmin
	}
	return u
}
