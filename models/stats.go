package models

import "github.com/shopspring/decimal"

// BetStats is the aggregate betting performance for one user.
//
// TotalBets counts every bet regardless of status; all other fields are
// computed over settled (won or lost) bets only. Yield is defined identically
// to ROI in this service.
type BetStats struct {
	TotalBets   int             `json:"totalBets"`
	TotalStaked decimal.Decimal `json:"totalStaked"`
	TotalProfit decimal.Decimal `json:"totalProfit"`
	WinRate     decimal.Decimal `json:"winRate"`
	AvgOdds     decimal.Decimal `json:"avgOdds"`
	ROI         decimal.Decimal `json:"roi"`
	Yield       decimal.Decimal `json:"yield"`
}
