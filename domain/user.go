package domain

// User is a registered account. Password holds the bcrypt hash and is never
// serialized.
type User struct {
	ID       int64  `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Password string `json:"-" db:"password"`
	Profile
}

// Profile is the set of optional user attributes. A nil field is stored as
// NULL and rendered as JSON null.
type Profile struct {
	Name     *string `json:"name" db:"name"`
	DOB      *string `json:"dob" db:"dob"`
	Sex      *string `json:"sex" db:"sex"`
	Mobile   *string `json:"mobile" db:"mobile"`
	Address  *string `json:"address" db:"address"`
	Pincode  *string `json:"pincode" db:"pincode"`
	UserType *string `json:"user_type" db:"user_type"`
}

// Identity is what a session token asserts about its holder.
type Identity struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	Name     *string `json:"name"`
	UserType *string `json:"user_type"`
}

// Identity returns the claims subset of u.
func (u *User) Identity() Identity {
	return Identity{ID: u.ID, Username: u.Username, Name: u.Name, UserType: u.UserType}
}
