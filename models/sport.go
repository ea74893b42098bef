package models

// Sport is reference data seeded at startup and read-only via the public API.
type Sport struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
	Slug string `db:"slug" json:"slug"`
}

// League belongs to a sport. Reference data, read-only.
type League struct {
	ID      string `db:"id" json:"id"`
	SportID string `db:"sport_id" json:"sportId"`
	Name    string `db:"name" json:"name"`
	Slug    string `db:"slug" json:"slug"`
	Country string `db:"country" json:"country"`
}
