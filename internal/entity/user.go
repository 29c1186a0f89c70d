package entity

import "time"

// ActiveUser is a daily-active-user row mirrored from the API. Held only in
// transient state; never persisted locally.
type ActiveUser struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	LastSeen  time.Time `json:"last_seen"`
}
