package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeUser_Defaults(t *testing.T) {
	user := DecodeUser("u1", map[string]interface{}{})

	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "", user.FirstName)
	assert.Equal(t, "", user.LastName)
	assert.Equal(t, "", user.PhoneNumber)
	assert.Equal(t, "", user.Email)
	assert.Equal(t, 0.0, user.OverallRating)
	assert.Equal(t, 0, user.TotalRatings)
	assert.False(t, user.IsBanned)
}

func TestDecodeUser_StoredFields(t *testing.T) {
	user := DecodeUser("u1", map[string]interface{}{
		"first_name":    "Anna",
		"last_name":     "Khan",
		"phone_number":  "+923000000000",
		"email":         "anna@example.com",
		"overallRating": 4.5,
		"totalRatings":  int64(12),
		"isBanned":      true,
	})

	assert.Equal(t, "Anna", user.FirstName)
	assert.Equal(t, "Khan", user.LastName)
	assert.Equal(t, "+923000000000", user.PhoneNumber)
	assert.Equal(t, "anna@example.com", user.Email)
	assert.Equal(t, 4.5, user.OverallRating)
	assert.Equal(t, 12, user.TotalRatings)
	assert.True(t, user.IsBanned)
}

func TestUser_JSONShape(t *testing.T) {
	raw, err := json.Marshal(DecodeUser("u1", nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"u1","firstName":"","lastName":"","phoneNumber":"","email":"",
		"overallRating":0,"totalRatings":0,"fraudCount":0,"isBanned":false}`, string(raw))
}

func TestUser_MatchesName(t *testing.T) {
	anna := DecodeUser("u1", map[string]interface{}{"first_name": "Anna"})
	juan := DecodeUser("u2", map[string]interface{}{"first_name": "Juan"})
	bob := DecodeUser("u3", map[string]interface{}{"first_name": "Bob", "last_name": "Stone"})

	assert.True(t, anna.MatchesName("an"))
	assert.True(t, juan.MatchesName("an"))
	assert.False(t, bob.MatchesName("an"))
	assert.True(t, bob.MatchesName("STON"))
}

func TestParseBanUserRequest(t *testing.T) {
	assert.True(t, ParseBanUserRequest(map[string]interface{}{"isBanned": true}).IsBanned)
	assert.False(t, ParseBanUserRequest(map[string]interface{}{"isBanned": false}).IsBanned)
	assert.False(t, ParseBanUserRequest(map[string]interface{}{"isBanned": "true"}).IsBanned)
	assert.False(t, ParseBanUserRequest(map[string]interface{}{"isBanned": 1.0}).IsBanned)
	assert.False(t, ParseBanUserRequest(nil).IsBanned)
}

func TestDecodeRide(t *testing.T) {
	ride := DecodeRide(map[string]interface{}{
		"createdAt":      time.Unix(1700000000, 0),
		"pickupLocation": "Model Town, Lahore",
		"destination":    "DHA Phase 5, Lahore, Pakistan",
		"driverName":     "Kamran",
		"passengerName":  "Sara",
		"status":         "completed",
	}, time.UTC)

	assert.Equal(t, "2023-11-14", ride.Date)
	assert.Equal(t, "10:13:20 PM", ride.Time)
	assert.Equal(t, "Model Town", ride.Pickup)
	assert.Equal(t, "DHA Phase 5", ride.Dropoff)
	assert.Equal(t, "Kamran", ride.DriverName)
	assert.Equal(t, "Sara", ride.PassengerName)
	require.NotNil(t, ride.Status)
	assert.Equal(t, "completed", *ride.Status)
}

func TestDecodeRide_Defaults(t *testing.T) {
	ride := DecodeRide(map[string]interface{}{}, time.UTC)

	raw, err := json.Marshal(ride)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"","time":"","pickup":"","dropoff":"","driverName":"","passengerName":"","status":null}`, string(raw))
	assert.False(t, ride.MatchesName("a"))
}

func TestDecodeRide_NonStringFieldsAreBlank(t *testing.T) {
	ride := DecodeRide(map[string]interface{}{
		"driverName": int64(42),
		"status":     map[string]interface{}{"code": 3},
	}, time.UTC)

	assert.Equal(t, "", ride.DriverName)
	assert.Nil(t, ride.Status)

	e := DecodeEmergency("e1", map[string]interface{}{"pushedBy": map[string]interface{}{"path": "users/u1"}})
	assert.Equal(t, "", e.PushedBy)
}

func TestDecodeEmergency_Defaults(t *testing.T) {
	e := DecodeEmergency("e1", map[string]interface{}{})

	assert.Equal(t, "", e.PushedBy)
	assert.Equal(t, "No reason provided", e.Reason)
	assert.Nil(t, e.RideID)
	assert.Nil(t, e.Timestamp)
}

func TestEmergencyView(t *testing.T) {
	e := DecodeEmergency("e1", map[string]interface{}{
		"pushedBy":  "u1",
		"reason":    "Driver harassment",
		"rideId":    "r1",
		"timestamp": map[string]interface{}{"_seconds": int64(1700000000), "_nanoseconds": int64(0)},
	})
	username := "Anna"
	ride := &Ride{DriverName: "Kamran", PassengerName: "Sara"}

	view := NewEmergencyView(e, &username, ride, time.UTC)
	assert.Equal(t, "u1", view.PushedBy)
	assert.Equal(t, "Anna", view.Username)
	assert.Equal(t, "r1", *view.RideID)
	assert.Equal(t, "2023-11-14", view.Date)
	assert.Equal(t, "10:13:20 PM", view.Time)

	assert.True(t, view.MatchesName("ann"))
	assert.True(t, view.MatchesName("kam"))
	assert.True(t, view.MatchesName("SAR"))
	assert.False(t, view.MatchesName("zed"))
}

func TestEmergencyView_UnresolvedReferences(t *testing.T) {
	view := NewEmergencyView(DecodeEmergency("e1", nil), nil, nil, time.UTC)

	raw, err := json.Marshal(view)
	require.NoError(t, err)
	assert.JSONEq(t, `{"pushedBy":"","username":"","reason":"No reason provided","rideId":null,"rideData":null,"date":"","time":""}`, string(raw))
	assert.False(t, view.MatchesName("a"))
}

func TestFraudView(t *testing.T) {
	f := DecodeFraud("f1", map[string]interface{}{
		"fraudUserId": "u1",
		"rideId":      "r1",
		"timestamp":   time.Unix(1700000000, 0),
	})
	assert.Equal(t, "No reason provided", f.Reason)

	name := "Anna"
	view := NewFraudView(f, &name, &Ride{DriverName: "Kamran"}, time.UTC)
	assert.Equal(t, "f1", view.ID)
	assert.Equal(t, "Anna", view.Fraudster)
	assert.Equal(t, "Kamran", view.Driver)
	assert.True(t, view.MatchesName("kAm"))
	assert.True(t, view.MatchesName("anna"))

	orphan := NewFraudView(f, nil, nil, time.UTC)
	assert.Equal(t, "", orphan.Fraudster)
	assert.Equal(t, "", orphan.Driver)
}

func TestFareControls_PartialUpdate(t *testing.T) {
	stored := map[string]interface{}{
		"litersPerMeter": "0.05",
		"petrolRate":     int64(280),
		"vehicle":        map[string]interface{}{"type": "car", "seats": 4},
	}

	update := ParseFareControlsUpdate(map[string]interface{}{"petrolRate": 300.0})
	assert.Equal(t, map[string]interface{}{"petrolRate": 300.0}, update.Fields())

	merged := update.Apply(stored)
	assert.Equal(t, "0.05", merged.LitersPerMeter)
	assert.Equal(t, 300.0, merged.PetrolRate)
	assert.Equal(t, map[string]interface{}{"type": "car", "seats": 4}, merged.Vehicle)
	assert.Equal(t, int64(280), stored["petrolRate"])
}

func TestFareControls_ZeroAndNullKeepStoredValue(t *testing.T) {
	update := ParseFareControlsUpdate(map[string]interface{}{
		"petrolRate":     0.0,
		"vehicle":        nil,
		"litersPerMeter": "",
	})

	assert.Empty(t, update.Fields())
	merged := update.Apply(map[string]interface{}{"petrolRate": 280.0, "vehicle": "bike"})
	assert.Equal(t, 280.0, merged.PetrolRate)
	assert.Equal(t, "bike", merged.Vehicle)
	assert.Nil(t, merged.LitersPerMeter)
}

func TestDecodeFareControls_EmptyValuesAreNull(t *testing.T) {
	controls := DecodeFareControls(map[string]interface{}{
		"litersPerMeter": 0,
		"petrolRate":     int64(280),
		"vehicle":        "",
	})

	assert.Nil(t, controls.LitersPerMeter)
	assert.Equal(t, int64(280), controls.PetrolRate)
	assert.Nil(t, controls.Vehicle)
}

func TestFareControls_JSONShape(t *testing.T) {
	raw, err := json.Marshal(DecodeFareControls(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"litersPerMeter":null,"petrolRate":null,"vehicle":null}`, string(raw))
}
