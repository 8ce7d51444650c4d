package services

import (
	"context"
	"fmt"
	"time"

	"rideadmin/internal/models"
	"rideadmin/internal/repositories/interfaces"
	"rideadmin/pkg/logger"
)

type RideService interface {
	ListRides(ctx context.Context) ([]*models.Ride, error)
	SearchRides(ctx context.Context, name string) ([]*models.Ride, error)
}

type rideService struct {
	store    interfaces.DocumentStore
	location *time.Location
	logger   *logger.Logger
}

func NewRideService(store interfaces.DocumentStore, location *time.Location, logger *logger.Logger) RideService {
	if location == nil {
		location = time.Local
	}
	return &rideService{
		store:    store,
		location: location,
		logger:   logger.WithField("service", "ride"),
	}
}

func (s *rideService) ListRides(ctx context.Context) ([]*models.Ride, error) {
	rides, err := s.loadRides(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.WithMethod("getRides").WithField("count", len(rides)).Info("Rides fetched")
	return rides, nil
}

// SearchRides matches name against either the driver or the passenger.
func (s *rideService) SearchRides(ctx context.Context, name string) ([]*models.Ride, error) {
	rides, err := s.loadRides(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*models.Ride, 0, len(rides))
	for _, ride := range rides {
		if ride.MatchesName(name) {
			matched = append(matched, ride)
		}
	}

	s.logger.WithMethod("getRidebyDriver").WithField("count", len(matched)).Info("Rides searched")
	return matched, nil
}

func (s *rideService) loadRides(ctx context.Context) ([]*models.Ride, error) {
	docs, err := s.store.List(ctx, interfaces.CollectionRides)
	if err != nil {
		return nil, fmt.Errorf("failed to list rides: %w", err)
	}
	if len(docs) == 0 {
		return nil, ErrNotFound
	}

	rides := make([]*models.Ride, len(docs))
	for i, doc := range docs {
		rides[i] = models.DecodeRide(doc.Data, s.location)
	}
	return rides, nil
}
