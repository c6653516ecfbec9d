package domain

import "time"

type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type RegisterInput struct {
	Username       string `json:"username" validate:"required,min=3,max=150"`
	Email          string `json:"email"    validate:"omitempty,email,max=254"`
	Password       string `json:"password" validate:"required,min=8,max=128"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type LoginInput struct {
	Username string
	Password string
}

// Session is the result of a successful login. SessionID is empty when
// cookie sessions are disabled.
type Session struct {
	User      *User
	Token     string
	SessionID string
}
