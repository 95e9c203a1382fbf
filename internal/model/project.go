package model

import "time"

// Project is a portfolio entry shown on the marketing site.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Client      string    `json:"client,omitempty"`
	Location    string    `json:"location,omitempty"`
	Year        string    `json:"year,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
