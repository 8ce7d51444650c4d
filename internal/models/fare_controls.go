package models

import (
	"rideadmin/internal/utils"
)

// Stored field names in the fare controls singleton.
const (
	FareFieldLitersPerMeter = "litersPerMeter"
	FareFieldPetrolRate     = "petrolRate"
	FareFieldVehicle        = "vehicle"
)

// FareControls holds the stored values as they are, in whatever form the
// document keeps them.
type FareControls struct {
	LitersPerMeter interface{} `json:"litersPerMeter"`
	PetrolRate     interface{} `json:"petrolRate"`
	Vehicle        interface{} `json:"vehicle"`
}

// DecodeFareControls reports each stored value, or null when it is absent or empty.
func DecodeFareControls(data map[string]interface{}) *FareControls {
	return &FareControls{
		LitersPerMeter: utils.NonEmpty(data[FareFieldLitersPerMeter]),
		PetrolRate:     utils.NonEmpty(data[FareFieldPetrolRate]),
		Vehicle:        utils.NonEmpty(data[FareFieldVehicle]),
	}
}

// FareControlsUpdate carries only the fields an admin supplied. Absent, null,
// zero and empty values all count as not supplied.
type FareControlsUpdate struct {
	LitersPerMeter *float64 `validate:"omitempty,fare_amount"`
	PetrolRate     *float64 `validate:"omitempty,fare_amount"`
	Vehicle        *string  `validate:"omitempty,max=64"`
}

func ParseFareControlsUpdate(body map[string]interface{}) *FareControlsUpdate {
	return &FareControlsUpdate{
		LitersPerMeter: utils.OptionalFloat64(body[FareFieldLitersPerMeter]),
		PetrolRate:     utils.OptionalFloat64(body[FareFieldPetrolRate]),
		Vehicle:        utils.OptionalString(body[FareFieldVehicle]),
	}
}

// Fields returns the supplied values to persist. Fields left out are not
// written, so their stored form is untouched.
func (u *FareControlsUpdate) Fields() map[string]interface{} {
	fields := make(map[string]interface{}, 3)
	if u.LitersPerMeter != nil {
		fields[FareFieldLitersPerMeter] = *u.LitersPerMeter
	}
	if u.PetrolRate != nil {
		fields[FareFieldPetrolRate] = *u.PetrolRate
	}
	if u.Vehicle != nil {
		fields[FareFieldVehicle] = *u.Vehicle
	}
	return fields
}

// Apply overlays the supplied values on the stored document data.
func (u *FareControlsUpdate) Apply(stored map[string]interface{}) *FareControls {
	merged := &FareControls{
		LitersPerMeter: stored[FareFieldLitersPerMeter],
		PetrolRate:     stored[FareFieldPetrolRate],
		Vehicle:        stored[FareFieldVehicle],
	}
	if u.LitersPerMeter != nil {
		merged.LitersPerMeter = *u.LitersPerMeter
	}
	if u.PetrolRate != nil {
		merged.PetrolRate = *u.PetrolRate
	}
	if u.Vehicle != nil {
		merged.Vehicle = *u.Vehicle
	}
	return merged
}
