package auth

import "api-playground/internal/api/v1/dto"

// UserInDB is a row of the user table
type UserInDB struct {
	dto.User
	HashedPassword string `json:"-"`
}

// UserTable is a read-only username -> user lookup
type UserTable struct {
	rows map[string]UserInDB
}

// NewUserTable copies rows into a new table keyed by username
func NewUserTable(rows ...UserInDB) *UserTable {
	t := &UserTable{rows: make(map[string]UserInDB, len(rows))}
	for _, row := range rows {
		t.rows[row.Username] = row
	}
	return t
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

// defaultUsers is built once at startup and never mutated
var defaultUsers = NewUserTable(
	UserInDB{
		User: dto.User{
			Username: "johndoe",
			FullName: strPtr("John Doe"),
			Email:    strPtr("johndoe@example.com"),
			Disabled: boolPtr(false),
		},
		HashedPassword: "fakehashedsecret",
	},
	UserInDB{
		User: dto.User{
			Username: "alice",
			FullName: strPtr("Alice Wonderson"),
			Email:    strPtr("alice@example.com"),
			Disabled: boolPtr(true),
		},
		HashedPassword: "fakehashedsecret2",
	},
)

// DefaultUsers returns the static user table
func DefaultUsers() *UserTable {
	return defaultUsers
}

// Lookup returns a copy of the public view of username
func (t *UserTable) Lookup(username string) (dto.User, bool) {
	row, ok := t.rows[username]
	if !ok {
		return dto.User{}, false
	}
	user := row.User
	if row.Email != nil {
		user.Email = strPtr(*row.Email)
	}
	if row.FullName != nil {
		user.FullName = strPtr(*row.FullName)
	}
	if row.Disabled != nil {
		user.Disabled = boolPtr(*row.Disabled)
	}
	return user, true
}
