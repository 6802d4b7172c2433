package internal

import "strings"

// CredentialStore holds the login credentials: an optional stored override
// plus the environment defaults consulted when no override exists.
//
// Comparison is plain-text equality, preserved from the observed behavior of
// the app. There is no hashing and no rate limiting; treat the backing file
// accordingly.
type CredentialStore struct {
	envUser string
	envPass string

	// Stored override, persisted when the user asked to be remembered or
	// changed the password.
	Username string
	Password string
	Remember bool
}

// NewCredentialStore returns a store that falls back to the given
// environment defaults.
func NewCredentialStore(envUser, envPass string) *CredentialStore {
	return &CredentialStore{envUser: envUser, envPass: envPass}
}

// Effective returns the credentials a login attempt is compared against:
// the stored override where present, else the environment defaults.
func (c *CredentialStore) Effective() (user, pass string) {
	user = c.envUser
	pass = c.envPass
	if c.Username != "" {
		user = c.Username
	}
	if c.Password != "" {
		pass = c.Password
	}
	return user, pass
}

// Validate reports whether the candidate credentials match the effective
// ones. Case-sensitive, exact match.
func (c *CredentialStore) Validate(user, pass string) bool {
	effUser, effPass := c.Effective()
	return user == effUser && pass == effPass
}

// ChangePassword replaces the stored password after checking the current one.
func (c *CredentialStore) ChangePassword(current, newPass, confirm string) error {
	_, effPass := c.Effective()
	if current != effPass {
		return ErrInvalidCurrentPassword
	}
	if strings.TrimSpace(newPass) == "" {
		return ErrEmptyNewPassword
	}
	if confirm != newPass {
		return ErrPasswordMismatch
	}
	c.Password = newPass
	return nil
}

// SetRemember stores the credentials as the new override when flag is true.
// When false only the flag and the username prefill are cleared; a stored
// password override survives, so a password set through ChangePassword keeps
// validating until a full reset.
func (c *CredentialStore) SetRemember(flag bool, user, pass string) {
	c.Remember = flag
	if flag {
		c.Username = user
		c.Password = pass
		return
	}
	c.Username = ""
}
