package model

import "time"

type Dessert struct {
	DessertID   int64      `json:"dessertid"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Rating      *float64   `json:"rating,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}
