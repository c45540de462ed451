package entity

import "time"

type Blog struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Description  string    `db:"description"`
	WebsiteURL   string    `db:"website_url"`
	IsMembership bool      `db:"is_membership"`
	CreatedAt    time.Time `db:"created_at"`
}
