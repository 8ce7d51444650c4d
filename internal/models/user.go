package models

import (
	"rideadmin/internal/utils"
)

// Stored field names in the users collection.
const (
	UserFieldFirstName     = "first_name"
	UserFieldLastName      = "last_name"
	UserFieldPhoneNumber   = "phone_number"
	UserFieldEmail         = "email"
	UserFieldOverallRating = "overallRating"
	UserFieldTotalRatings  = "totalRatings"
	UserFieldIsBanned      = "isBanned"
)

type User struct {
	ID            string  `json:"id"`
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	PhoneNumber   string  `json:"phoneNumber"`
	Email         string  `json:"email"`
	OverallRating float64 `json:"overallRating"`
	TotalRatings  int     `json:"totalRatings"`
	FraudCount    int     `json:"fraudCount"`
	IsBanned      bool    `json:"isBanned"`
}

// DecodeUser maps a stored user document; absent fields take their zero value.
// FraudCount is derived and filled in by the caller.
func DecodeUser(id string, data map[string]interface{}) *User {
	return &User{
		ID:            id,
		FirstName:     utils.SafeString(data[UserFieldFirstName]),
		LastName:      utils.SafeString(data[UserFieldLastName]),
		PhoneNumber:   utils.SafeString(data[UserFieldPhoneNumber]),
		Email:         utils.SafeString(data[UserFieldEmail]),
		OverallRating: utils.SafeFloat64(data[UserFieldOverallRating]),
		TotalRatings:  utils.SafeInt(data[UserFieldTotalRatings]),
		IsBanned:      utils.SafeBool(data[UserFieldIsBanned]),
	}
}

func (u *User) MatchesName(name string) bool {
	return utils.ContainsFold(u.FirstName, name) || utils.ContainsFold(u.LastName, name)
}

type BanUserRequest struct {
	IsBanned bool
}

// ParseBanUserRequest treats anything other than a literal JSON true as an unban.
func ParseBanUserRequest(body map[string]interface{}) *BanUserRequest {
	banned, ok := body["isBanned"].(bool)
	return &BanUserRequest{IsBanned: ok && banned}
}
