package model

import "time"

type User struct {
	ID           uint `json:"id" gorm:"primaryKey"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Username     string  `json:"username" gorm:"not null"`
	Email        string  `json:"email" gorm:"unique;not null;size:255"`
	PasswordHash string  `json:"-" gorm:"not null"`
	Images       []Image `json:"-"`
}
