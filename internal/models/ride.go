package models

import (
	"time"

	"rideadmin/internal/utils"
)

// Stored field names in the rides collection.
const (
	RideFieldCreatedAt      = "createdAt"
	RideFieldPickupLocation = "pickupLocation"
	RideFieldDestination    = "destination"
	RideFieldDriverName     = "driverName"
	RideFieldPassengerName  = "passengerName"
	RideFieldStatus         = "status"
)

// Ride is the display summary of a ride document.
type Ride struct {
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	Pickup        string  `json:"pickup"`
	Dropoff       string  `json:"dropoff"`
	DriverName    string  `json:"driverName"`
	PassengerName string  `json:"passengerName"`
	Status        *string `json:"status"`
}

func DecodeRide(data map[string]interface{}, loc *time.Location) *Ride {
	date, clock := utils.DateTimeFromTimestamp(utils.SafeTime(data[RideFieldCreatedAt]), loc)
	return &Ride{
		Date:          date,
		Time:          clock,
		Pickup:        utils.LocationFromAddress(utils.SafeString(data[RideFieldPickupLocation])),
		Dropoff:       utils.LocationFromAddress(utils.SafeString(data[RideFieldDestination])),
		DriverName:    utils.SafeString(data[RideFieldDriverName]),
		PassengerName: utils.SafeString(data[RideFieldPassengerName]),
		Status:        utils.OptionalString(data[RideFieldStatus]),
	}
}

func (r *Ride) MatchesName(name string) bool {
	return utils.ContainsFold(r.DriverName, name) || utils.ContainsFold(r.PassengerName, name)
}
