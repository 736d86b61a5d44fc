package domains

import "time"

// Account is a console operator. Password is only populated on the register
// payload; reads from storage carry the hash in PassHash and leave it out of
// JSON responses.
type Account struct {
	ID        int64     `json:"id" db:"id"`
	FullName  string    `json:"full_name" db:"full_name"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"password,omitempty" db:"-"`
	PassHash  string    `json:"-" db:"passhash"`
	Role      string    `json:"role" db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
