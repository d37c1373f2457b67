package models

// User represents a registered person.
//
// The split and analysis engines only reference users by ID. The full record
// is read when a notification has to be addressed.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is where notifications are sent.
	Email string `json:"email"`

	// Phone is stored for the user's profile; nothing sends to it yet.
	Phone string `json:"phone"`
}

// UserPatch carries a partial user update. Nil fields are left unchanged.
type UserPatch struct {
	Name  *string
	Email *string
	Phone *string
}

// Empty reports whether the patch changes nothing.
func (p UserPatch) Empty() bool {
	return p.Name == nil && p.Email == nil && p.Phone == nil
}
