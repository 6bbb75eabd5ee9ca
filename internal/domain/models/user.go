package models

// User is a public reader account.
type User struct {
	ID           int64   `db:"id" json:"id"`
	Username     string  `db:"username" json:"username"`
	Email        string  `db:"email" json:"email"`
	Password     []byte  `db:"password" json:"-"`
	ProfileImage *string `db:"profile_image" json:"profileImage"`
}

// Backuser is an administrator of the mobile admin app.
type Backuser struct {
	ID           int64   `db:"id" json:"id"`
	Username     string  `db:"username" json:"username"`
	Password     []byte  `db:"password" json:"-"`
	ProfileImage *string `db:"profileimage" json:"profileimage"`
	DarkMode     bool    `db:"darkmode" json:"darkmode"`
}
