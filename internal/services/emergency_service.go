package services

import (
	"context"
	"fmt"
	"time"

	"rideadmin/internal/models"
	"rideadmin/internal/repositories/interfaces"
	"rideadmin/pkg/logger"
)

type EmergencyService interface {
	ListEmergencies(ctx context.Context) ([]*models.EmergencyView, error)
	SearchEmergencies(ctx context.Context, name string) ([]*models.EmergencyView, error)
	Enrich(ctx context.Context, doc *interfaces.Document) *models.EmergencyView
}

type emergencyService struct {
	store    interfaces.DocumentStore
	resolver ResolverService
	location *time.Location
	logger   *logger.Logger
}

func NewEmergencyService(
	store interfaces.DocumentStore,
	resolver ResolverService,
	location *time.Location,
	logger *logger.Logger,
) EmergencyService {
	if location == nil {
		location = time.Local
	}
	return &emergencyService{
		store:    store,
		resolver: resolver,
		location: location,
		logger:   logger.WithField("service", "emergency"),
	}
}

func (s *emergencyService) ListEmergencies(ctx context.Context) ([]*models.EmergencyView, error) {
	views, err := s.loadViews(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.WithMethod("getEmergencies").WithField("count", len(views)).Info("Emergencies fetched")
	return views, nil
}

// SearchEmergencies matches the reporter's name or either party of the linked ride.
func (s *emergencyService) SearchEmergencies(ctx context.Context, name string) ([]*models.EmergencyView, error) {
	views, err := s.loadViews(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*models.EmergencyView, 0, len(views))
	for _, view := range views {
		if view.MatchesName(name) {
			matched = append(matched, view)
		}
	}

	s.logger.WithMethod("getEmergenciesByName").WithField("count", len(matched)).Info("Emergencies searched")
	return matched, nil
}

func (s *emergencyService) Enrich(ctx context.Context, doc *interfaces.Document) *models.EmergencyView {
	emergency := models.DecodeEmergency(doc.ID, doc.Data)

	var ride *models.Ride
	if emergency.RideID != nil {
		ride = s.resolver.ResolveRide(ctx, *emergency.RideID)
	}
	return models.NewEmergencyView(emergency, s.resolver.ResolveUsername(ctx, emergency.PushedBy), ride, s.location)
}

func (s *emergencyService) loadViews(ctx context.Context) ([]*models.EmergencyView, error) {
	docs, err := s.store.List(ctx, interfaces.CollectionEmergencies)
	if err != nil {
		return nil, fmt.Errorf("failed to list emergencies: %w", err)
	}
	if len(docs) == 0 {
		return nil, ErrNotFound
	}

	return enrichAll(ctx, docs, s.Enrich), nil
}
