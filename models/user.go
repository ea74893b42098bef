package models

import "time"

// User represents a registered account. The ID is supplied by the caller at
// registration time (the external identity provider's uid) rather than
// generated server-side.
type User struct {
	ID                  string     `db:"id" json:"id"`
	Email               string     `db:"email" json:"email"`
	DisplayName         string     `db:"display_name" json:"displayName"`
	PhotoURL            string     `db:"photo_url" json:"photoURL"`
	IsPremium           bool       `db:"is_premium" json:"isPremium"`
	SubscriptionEndDate *time.Time `db:"subscription_end_date" json:"subscriptionEndDate"`
	CreatedAt           time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt           time.Time  `db:"updated_at" json:"updatedAt"`
}

// UserPatch lists the user fields that may change after registration.
// Server-owned fields (id, email, timestamps) are deliberately absent.
type UserPatch struct {
	DisplayName         *string    `json:"displayName"`
	PhotoURL            *string    `json:"photoURL"`
	IsPremium           *bool      `json:"isPremium"`
	SubscriptionEndDate *time.Time `json:"subscriptionEndDate"`
}
