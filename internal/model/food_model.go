package model

import "time"

type FoodItem struct {
	FoodID     int64      `json:"foodid"`
	Name       string     `json:"name"`
	PhotoURL   string     `json:"photoUrl,omitempty"`
	Price      float64    `json:"price"`
	Quantity   int        `json:"quantity"`
	Expiration *time.Time `json:"expiration,omitempty"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
}
