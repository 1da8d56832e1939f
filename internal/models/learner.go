package models

import "time"

// Learner is a child profile. One service instance can host several
// children; each owns exactly one progress document.
type Learner struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Character Character `json:"character"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
