package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipster is a public profile a user publishes picks under. A user has at
// most one tipster profile.
type Tipster struct {
	ID          string `db:"id" json:"id"`
	UserID      string `db:"user_id" json:"userId"`
	DisplayName string `db:"display_name" json:"displayName"`
	Bio         string `db:"bio" json:"bio"`
	AvatarURL   string `db:"avatar_url" json:"avatarURL"`

	IsVerified        bool             `db:"is_verified" json:"isVerified"`
	SubscriptionPrice *decimal.Decimal `db:"subscription_price" json:"subscriptionPrice"`
	IsPublic          bool             `db:"is_public" json:"isPublic"`

	// Aggregate performance fields. Populated externally; no operation in
	// this service recomputes them.
	TotalPicks int             `db:"total_picks" json:"totalPicks"`
	WinRate    decimal.Decimal `db:"win_rate" json:"winRate"`
	AvgOdds    decimal.Decimal `db:"avg_odds" json:"avgOdds"`
	Yield      decimal.Decimal `db:"yield_value" json:"yield"`

	FollowerCount int `db:"follower_count" json:"followerCount"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// TipsterPatch lists the tipster fields the profile owner may change.
// Verification, aggregate stats and the follower count are server-owned.
type TipsterPatch struct {
	DisplayName       *string          `json:"displayName"`
	Bio               *string          `json:"bio"`
	AvatarURL         *string          `json:"avatarURL"`
	SubscriptionPrice *decimal.Decimal `json:"subscriptionPrice"`
	IsPublic          *bool            `json:"isPublic"`
}

// TipsterListOptions filters and paginates the tipster directory.
// The list is ordered by follower count descending.
type TipsterListOptions struct {
	IsPublic *bool
	Limit    int
	Offset   int
}
