package models

import "strings"

// Rating is a subscriber's review of the application, keyed by a
// caller-supplied id. The subscriber name is resolved from the subscriber
// service at creation time, not supplied by the caller.
type Rating struct {
	ID    int    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Ime   string `gorm:"type:char(25)" json:"ime"`
	Ocena string `gorm:"type:char(300)" json:"ocena"`
}

func (Rating) TableName() string {
	return "ratings"
}

// Trimmed returns a copy with the fixed-width column padding removed.
// Postgres pads char columns with spaces, so every read path goes
// through this.
func (r Rating) Trimmed() Rating {
	r.Ime = strings.TrimSpace(r.Ime)
	r.Ocena = strings.TrimSpace(r.Ocena)
	return r
}

// RatingRequest is the POST /ratings body. The subscriber id is resolved
// to a name before anything is written.
type RatingRequest struct {
	ID           int    `json:"id"`
	SubscriberID int    `json:"subscriber_id"`
	Rating       string `json:"rating"`
}
