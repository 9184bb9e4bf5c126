package model

// Session is a snapshot of the client's authenticated identity: a bearer
// token plus the user it resolved to. Token and User are always both set or
// both empty; the session store enforces the pairing.
type Session struct {
	Token string
	User  *User
}

// LoggedIn reports whether the snapshot carries a credential.
func (s Session) LoggedIn() bool {
	return s.Token != "" && s.User != nil
}

// Role returns the role navigation decisions are made on. A logged-in
// session whose user record carries no recognisable role routes as patient
// rather than being locked out.
func (s Session) Role() Role {
	if !s.LoggedIn() {
		return ""
	}
	if s.User.Role.Valid() {
		return s.User.Role
	}
	return RolePatient
}
