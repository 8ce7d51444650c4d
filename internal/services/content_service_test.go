package services

import (
	"context"
	"testing"
	"time"

	"rideadmin/internal/models"
	"rideadmin/internal/repositories/interfaces"
	"rideadmin/internal/repositories/memory"
	"rideadmin/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRideService_ListRides(t *testing.T) {
	svc := NewRideService(seededStore(), time.UTC, logger.NewNop())

	rides, err := svc.ListRides(context.Background())
	require.NoError(t, err)
	require.Len(t, rides, 2)

	first := rides[0]
	assert.Equal(t, "2024-03-05", first.Date)
	assert.Equal(t, "02:07:09 PM", first.Time)
	assert.Equal(t, "Main St 1", first.Pickup)
	assert.Equal(t, "Airport", first.Dropoff)
	require.NotNil(t, first.Status)
	assert.Equal(t, "completed", *first.Status)

	second := rides[1]
	assert.Empty(t, second.Date)
	assert.Empty(t, second.Pickup)
	assert.Nil(t, second.Status)
}

func TestRideService_SearchRides(t *testing.T) {
	svc := NewRideService(seededStore(), time.UTC, logger.NewNop())

	rides, err := svc.SearchRides(context.Background(), "bob")
	require.NoError(t, err)
	require.Len(t, rides, 1)
	assert.Equal(t, "Maria", rides[0].DriverName)

	rides, err = svc.SearchRides(context.Background(), "DAV")
	require.NoError(t, err)
	require.Len(t, rides, 1)

	_, err = NewRideService(memory.NewDocumentStore(), time.UTC, logger.NewNop()).SearchRides(context.Background(), "x")
	assert.ErrorIs(t, err, ErrNotFound)
}

func newEmergencyService(store interfaces.DocumentStore) EmergencyService {
	return NewEmergencyService(store, testResolver(store), time.UTC, logger.NewNop())
}

func TestEmergencyService_ListEmergencies(t *testing.T) {
	store := seededStore()
	store.Put(interfaces.CollectionEmergencies, "e1", map[string]interface{}{
		"pushedBy": "u2", "rideId": "r1", "reason": "Driver harassment", "timestamp": ts("2024-03-05T23:30:00Z"),
	})
	store.Put(interfaces.CollectionEmergencies, "e2", map[string]interface{}{
		"pushedBy": "ghost",
	})

	views, err := newEmergencyService(store).ListEmergencies(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.Equal(t, "Juan", views[0].Username)
	assert.Equal(t, "Driver harassment", views[0].Reason)
	require.NotNil(t, views[0].RideData)
	assert.Equal(t, "Dave", views[0].RideData.DriverName)
	assert.Equal(t, "2024-03-05", views[0].Date)
	assert.Equal(t, "11:30:00 PM", views[0].Time)

	assert.Equal(t, "ghost", views[1].PushedBy)
	assert.Empty(t, views[1].Username)
	assert.Equal(t, "No reason provided", views[1].Reason)
	assert.Nil(t, views[1].RideID)
	assert.Nil(t, views[1].RideData)
	assert.Empty(t, views[1].Date)
}

func TestEmergencyService_Empty(t *testing.T) {
	_, err := newEmergencyService(memory.NewDocumentStore()).ListEmergencies(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = newEmergencyService(memory.NewDocumentStore()).SearchEmergencies(context.Background(), "x")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEmergencyService_SearchMatchesRideParties(t *testing.T) {
	store := seededStore()
	store.Put(interfaces.CollectionEmergencies, "e1", map[string]interface{}{"pushedBy": "u3", "rideId": "r1"})
	store.Put(interfaces.CollectionEmergencies, "e2", map[string]interface{}{"pushedBy": "u2"})

	svc := newEmergencyService(store)

	byDriver, err := svc.SearchEmergencies(context.Background(), "dave")
	require.NoError(t, err)
	require.Len(t, byDriver, 1)
	assert.Equal(t, "u3", byDriver[0].PushedBy)

	byReporter, err := svc.SearchEmergencies(context.Background(), "juan")
	require.NoError(t, err)
	require.Len(t, byReporter, 1)
	assert.Equal(t, "u2", byReporter[0].PushedBy)

	none, err := svc.SearchEmergencies(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestFraudService_ListFrauds(t *testing.T) {
	store := seededStore()
	svc := NewFraudService(store, testResolver(store), time.UTC, logger.NewNop())

	views, err := svc.ListFrauds(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.Equal(t, &models.FraudView{
		ID: "f1", Date: "2024-03-06", Time: "10:00:00 AM", Fraudster: "Anna", Driver: "Dave", Reason: "Fake GPS",
	}, views[0])

	// unresolvable ride yields an empty driver instead of failing the request
	assert.Equal(t, "f2", views[1].ID)
	assert.Empty(t, views[1].Driver)
	assert.Equal(t, "No reason provided", views[1].Reason)
}

func TestFraudService_SearchFrauds(t *testing.T) {
	store := seededStore()
	svc := NewFraudService(store, testResolver(store), time.UTC, logger.NewNop())

	views, err := svc.SearchFrauds(context.Background(), "dav")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "f1", views[0].ID)

	views, err = svc.SearchFrauds(context.Background(), "anna")
	require.NoError(t, err)
	assert.Len(t, views, 2)
}

func TestFraudService_StoreFailure(t *testing.T) {
	store := newFailingStore(seededStore(), interfaces.CollectionFrauds)
	_, err := NewFraudService(store, testResolver(store), time.UTC, logger.NewNop()).ListFrauds(context.Background())
	assert.ErrorIs(t, err, errStoreDown)
}

const controlsID = "AvSIjnKaS5vdhJmFZny2"

func newFareStore() *memory.DocumentStore {
	store := memory.NewDocumentStore()
	store.Put(interfaces.CollectionControls, controlsID, map[string]interface{}{
		"litersPerMeter": 0.08, "petrolRate": 280.0, "vehicle": "car",
	})
	return store
}

func TestFareControlService_Get(t *testing.T) {
	svc := NewFareControlService(newFareStore(), controlsID, nil, logger.NewNop())

	controls, err := svc.GetFareControls(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.08, controls.LitersPerMeter)
	assert.Equal(t, 280.0, controls.PetrolRate)
	assert.Equal(t, "car", controls.Vehicle)

	_, err = NewFareControlService(newFareStore(), "other", nil, logger.NewNop()).GetFareControls(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFareControlService_PartialUpdate(t *testing.T) {
	store := newFareStore()
	svc := NewFareControlService(store, controlsID, logger.NewAuditLogger(logger.NewNop()), logger.NewNop())

	rate := 300.0
	merged, err := svc.UpdateFareControls(context.Background(), &models.FareControlsUpdate{PetrolRate: &rate})
	require.NoError(t, err)
	assert.Equal(t, 300.0, merged.PetrolRate)
	assert.Equal(t, 0.08, merged.LitersPerMeter)
	assert.Equal(t, "car", merged.Vehicle)

	stored, err := svc.GetFareControls(context.Background())
	require.NoError(t, err)
	assert.Equal(t, merged, stored)
}

func TestFareControlService_UpdateLeavesOmittedFieldsUntouched(t *testing.T) {
	store := memory.NewDocumentStore()
	store.Put(interfaces.CollectionControls, controlsID, map[string]interface{}{
		"litersPerMeter": "0.05",
		"petrolRate":     int64(280),
		"vehicle":        map[string]interface{}{"type": "car", "seats": 4},
	})
	svc := NewFareControlService(store, controlsID, logger.NewAuditLogger(logger.NewNop()), logger.NewNop())

	rate := 300.0
	merged, err := svc.UpdateFareControls(context.Background(), &models.FareControlsUpdate{PetrolRate: &rate})
	require.NoError(t, err)
	assert.Equal(t, "0.05", merged.LitersPerMeter)
	assert.Equal(t, 300.0, merged.PetrolRate)

	doc, err := store.Get(context.Background(), interfaces.CollectionControls, controlsID)
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"litersPerMeter": "0.05",
		"petrolRate":     300.0,
		"vehicle":        map[string]interface{}{"type": "car", "seats": 4},
	}, doc.Data)
}

func TestFareControlService_UpdateMissingDocument(t *testing.T) {
	svc := NewFareControlService(memory.NewDocumentStore(), controlsID, nil, logger.NewNop())
	_, err := svc.UpdateFareControls(context.Background(), &models.FareControlsUpdate{})
	assert.ErrorIs(t, err, ErrNotFound)
}
