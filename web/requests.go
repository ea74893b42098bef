package web

import (
	"encoding/json"
	"net/http"
	"reflect"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

// newValidator builds the request validator. Decimal fields are exposed to
// the numeric comparison rules (gt, gte) as float64, which validator cannot
// do for struct types on its own.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// decodeAndValidate decodes the JSON body into dst and runs struct
// validation, writing a 400 on failure. Returns false when the request
// was rejected.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// queryInt parses an integer query parameter, treating absence and garbage
// as zero.
func queryInt(r *http.Request, name string) int {
	v, _ := strconv.Atoi(r.URL.Query().Get(name))
	if v < 0 {
		return 0
	}
	return v
}

type registerUserRequest struct {
	Email       string `json:"email" validate:"required,email"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL" validate:"omitempty,url"`
}

type updateUserRequest struct {
	DisplayName *string `json:"displayName"`
	PhotoURL    *string `json:"photoURL" validate:"omitempty"`
}

type createBankRequest struct {
	Name           string          `json:"name" validate:"required"`
	Currency       string          `json:"currency" validate:"required,len=3"`
	InitialBalance decimal.Decimal `json:"initialBalance" validate:"gte=0"`
}

type updateBankRequest struct {
	Name           *string          `json:"name"`
	Currency       *string          `json:"currency" validate:"omitempty,len=3"`
	InitialBalance *decimal.Decimal `json:"initialBalance" validate:"omitnil,gte=0"`
	IsActive       *bool            `json:"isActive"`
}

type createBetRequest struct {
	BankID     string           `json:"bankId" validate:"required"`
	Event      string           `json:"event" validate:"required"`
	Market     string           `json:"market" validate:"required"`
	Selection  string           `json:"selection" validate:"required"`
	Odds       decimal.Decimal  `json:"odds" validate:"gte=1.01"`
	Stake      decimal.Decimal  `json:"stake" validate:"gt=0"`
	SportID    *string          `json:"sportId"`
	LeagueID   *string          `json:"leagueId"`
	Bookmaker  *string          `json:"bookmaker"`
	Notes      *string          `json:"notes"`
	Confidence *int             `json:"confidence" validate:"omitempty,min=1,max=5"`
	Tags       []string         `json:"tags"`
	EventDate  *time.Time       `json:"eventDate"`
}

type updateBetRequest struct {
	BankID     *string          `json:"bankId"`
	Event      *string          `json:"event"`
	Market     *string          `json:"market"`
	Selection  *string          `json:"selection"`
	Odds       *decimal.Decimal `json:"odds" validate:"omitnil,gte=1.01"`
	Stake      *decimal.Decimal `json:"stake" validate:"omitnil,gt=0"`
	SportID    *string          `json:"sportId"`
	LeagueID   *string          `json:"leagueId"`
	Bookmaker  *string          `json:"bookmaker"`
	Notes      *string          `json:"notes"`
	Confidence *int             `json:"confidence" validate:"omitempty,min=1,max=5"`
	Tags       *[]string        `json:"tags"`
	EventDate  *time.Time       `json:"eventDate"`
}

type createTipsterRequest struct {
	DisplayName       string           `json:"displayName" validate:"required"`
	Bio               string           `json:"bio"`
	AvatarURL         string           `json:"avatarURL" validate:"omitempty,url"`
	SubscriptionPrice *decimal.Decimal `json:"subscriptionPrice" validate:"omitnil,gte=0"`
}

type updateTipsterRequest struct {
	DisplayName       *string          `json:"displayName"`
	Bio               *string          `json:"bio"`
	AvatarURL         *string          `json:"avatarURL" validate:"omitempty,url"`
	SubscriptionPrice *decimal.Decimal `json:"subscriptionPrice" validate:"omitnil,gte=0"`
	IsPublic          *bool            `json:"isPublic"`
}

type createPickRequest struct {
	Event      string          `json:"event" validate:"required"`
	Market     string          `json:"market" validate:"required"`
	Selection  string          `json:"selection" validate:"required"`
	Odds       decimal.Decimal `json:"odds" validate:"gte=1.01"`
	SportID    *string         `json:"sportId"`
	LeagueID   *string         `json:"leagueId"`
	Bookmaker  *string         `json:"bookmaker"`
	Analysis   string          `json:"analysis"`
	Confidence int             `json:"confidence" validate:"required,min=1,max=5"`
	StakeUnits int             `json:"stakeUnits" validate:"required,min=1,max=10"`
	IsPremium  bool            `json:"isPremium"`
	EventDate  time.Time       `json:"eventDate" validate:"required"`
}

type updatePickRequest struct {
	Event      *string          `json:"event"`
	Market     *string          `json:"market"`
	Selection  *string          `json:"selection"`
	Odds       *decimal.Decimal `json:"odds" validate:"omitnil,gte=1.01"`
	SportID    *string          `json:"sportId"`
	LeagueID   *string          `json:"leagueId"`
	Bookmaker  *string          `json:"bookmaker"`
	Analysis   *string          `json:"analysis"`
	Confidence *int             `json:"confidence" validate:"omitempty,min=1,max=5"`
	StakeUnits *int             `json:"stakeUnits" validate:"omitempty,min=1,max=10"`
	IsPremium  *bool            `json:"isPremium"`
	EventDate  *time.Time       `json:"eventDate"`
}

type followRequest struct {
	SubscriptionType string `json:"subscriptionType" validate:"omitempty,oneof=free premium"`
}
