package domain

import "time"

type User struct {
	ID         int64
	TelegramID int64
	FirstName  string
	Username   string
	CreatedAt  time.Time
	LastActive time.Time
}
