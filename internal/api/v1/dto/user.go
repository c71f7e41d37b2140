package dto

// User is the public view of an account
type User struct {
	Username string  `json:"username" binding:"required"`
	Email    *string `json:"email"`
	FullName *string `json:"full_name"`
	Disabled *bool   `json:"disabled"`
}

// BodyUser is the user object accepted alongside an item in PUT /items/:item_id
type BodyUser struct {
	Username *string `json:"username" binding:"required"`
	Fullname *string `json:"fullname"`
}

// UsernamePath is the username path segment
type UsernamePath struct {
	Username string `uri:"username" binding:"required"`
}
