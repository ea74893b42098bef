package models

import "time"

// SubscriptionType distinguishes free follows from paid ones.
type SubscriptionType string

const (
	SubscriptionFree    SubscriptionType = "free"
	SubscriptionPremium SubscriptionType = "premium"
)

// Follow is a subscription relationship between a user and a tipster.
// At most one follow exists per (user, tipster) pair.
type Follow struct {
	ID               string           `db:"id" json:"id"`
	UserID           string           `db:"user_id" json:"userId"`
	TipsterID        string           `db:"tipster_id" json:"tipsterId"`
	SubscriptionType SubscriptionType `db:"subscription_type" json:"subscriptionType"`
	SubscribedAt     time.Time        `db:"subscribed_at" json:"subscribedAt"`
	ExpiresAt        *time.Time       `db:"expires_at" json:"expiresAt"`
}
