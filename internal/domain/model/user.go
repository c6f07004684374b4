package model

// セッションに載せるユーザー（passwordは持たない）
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// レジストリに登録されたユーザー
type RegisteredUser struct {
	User
	PasswordHash string `json:"-"`
}
