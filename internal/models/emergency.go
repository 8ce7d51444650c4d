package models

import (
	"time"

	"rideadmin/internal/utils"
)

// Stored field names in the emergencies collection.
const (
	EmergencyFieldPushedBy  = "pushedBy"
	EmergencyFieldReason    = "reason"
	EmergencyFieldRideID    = "rideId"
	EmergencyFieldTimestamp = "timestamp"
)

type Emergency struct {
	ID        string
	PushedBy  string
	Reason    string
	RideID    *string
	Timestamp *time.Time
}

func DecodeEmergency(id string, data map[string]interface{}) *Emergency {
	reason := utils.SafeString(data[EmergencyFieldReason])
	if reason == "" {
		reason = utils.DefaultReason
	}
	return &Emergency{
		ID:        id,
		PushedBy:  utils.SafeString(data[EmergencyFieldPushedBy]),
		Reason:    reason,
		RideID:    utils.OptionalString(data[EmergencyFieldRideID]),
		Timestamp: utils.SafeTime(data[EmergencyFieldTimestamp]),
	}
}

// EmergencyView is an emergency enriched with the reporter's name and ride summary.
// It is both the list response entry and the real-time event payload.
type EmergencyView struct {
	PushedBy string  `json:"pushedBy"`
	Username string  `json:"username"`
	Reason   string  `json:"reason"`
	RideID   *string `json:"rideId"`
	RideData *Ride   `json:"rideData"`
	Date     string  `json:"date"`
	Time     string  `json:"time"`
}

func NewEmergencyView(e *Emergency, username *string, ride *Ride, loc *time.Location) *EmergencyView {
	date, clock := utils.DateTimeFromTimestamp(e.Timestamp, loc)
	view := &EmergencyView{
		PushedBy: e.PushedBy,
		Reason:   e.Reason,
		RideID:   e.RideID,
		RideData: ride,
		Date:     date,
		Time:     clock,
	}
	if username != nil {
		view.Username = *username
	}
	return view
}

func (v *EmergencyView) MatchesName(name string) bool {
	if utils.ContainsFold(v.Username, name) {
		return true
	}
	return v.RideData != nil && v.RideData.MatchesName(name)
}
