package model

import "time"

type User struct {
	ID             int64
	Username       string
	Email          string
	HashedPassword string
	CreatedAt      time.Time
}
