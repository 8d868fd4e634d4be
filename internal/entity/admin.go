package entity

type Admin struct {
	ID       uint64  `json:"id"`
	Email    string  `json:"email"`
	Password *string `json:"password,omitempty"`
}

type AdminUpdate struct {
	Email           string  `json:"email"`
	Password        *string `json:"password"`
	CurrentPassword *string `json:"currentPassword"`
}
