package entity

import "time"

// Category is a donation category mirrored from the API. Pinned state is
// local-only; the backend knows nothing about pins.
type Category struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description,omitempty"`
	TargetAmount *float64   `json:"target_amount,omitempty"`
	Pinned       bool       `json:"-"`
	PinnedAt     *time.Time `json:"-"`
}

// Subcategory is a donation subcategory mirrored from the API.
type Subcategory struct {
	ID         string `json:"id"`
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
}
