package models

import (
	"time"

	"rideadmin/internal/utils"
)

// Stored field names in the frauds collection.
const (
	FraudFieldFraudUserID = "fraudUserId"
	FraudFieldRideID      = "rideId"
	FraudFieldReason      = "reason"
	FraudFieldTimestamp   = "timestamp"
)

type Fraud struct {
	ID          string
	FraudUserID string
	RideID      string
	Reason      string
	Timestamp   *time.Time
}

func DecodeFraud(id string, data map[string]interface{}) *Fraud {
	reason := utils.SafeString(data[FraudFieldReason])
	if reason == "" {
		reason = utils.DefaultReason
	}
	return &Fraud{
		ID:          id,
		FraudUserID: utils.SafeString(data[FraudFieldFraudUserID]),
		RideID:      utils.SafeString(data[FraudFieldRideID]),
		Reason:      reason,
		Timestamp:   utils.SafeTime(data[FraudFieldTimestamp]),
	}
}

type FraudView struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Fraudster string `json:"fraudster"`
	Driver    string `json:"driver"`
	Reason    string `json:"reason"`
}

func NewFraudView(f *Fraud, fraudster *string, ride *Ride, loc *time.Location) *FraudView {
	date, clock := utils.DateTimeFromTimestamp(f.Timestamp, loc)
	view := &FraudView{
		ID:     f.ID,
		Date:   date,
		Time:   clock,
		Reason: f.Reason,
	}
	if fraudster != nil {
		view.Fraudster = *fraudster
	}
	if ride != nil {
		view.Driver = ride.DriverName
	}
	return view
}

func (v *FraudView) MatchesName(name string) bool {
	return utils.ContainsFold(v.Fraudster, name) || utils.ContainsFold(v.Driver, name)
}
