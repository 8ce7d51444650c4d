package services

import (
	"context"
	"fmt"
	"time"

	"rideadmin/internal/models"
	"rideadmin/internal/repositories/interfaces"
	"rideadmin/pkg/logger"
)

type FraudService interface {
	ListFrauds(ctx context.Context) ([]*models.FraudView, error)
	SearchFrauds(ctx context.Context, name string) ([]*models.FraudView, error)
}

type fraudService struct {
	store    interfaces.DocumentStore
	resolver ResolverService
	location *time.Location
	logger   *logger.Logger
}

func NewFraudService(
	store interfaces.DocumentStore,
	resolver ResolverService,
	location *time.Location,
	logger *logger.Logger,
) FraudService {
	if location == nil {
		location = time.Local
	}
	return &fraudService{
		store:    store,
		resolver: resolver,
		location: location,
		logger:   logger.WithField("service", "fraud"),
	}
}

func (s *fraudService) ListFrauds(ctx context.Context) ([]*models.FraudView, error) {
	views, err := s.loadViews(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.WithMethod("getFrauds").WithField("count", len(views)).Info("Frauds fetched")
	return views, nil
}

// SearchFrauds matches the fraudster's name or the driver of the linked ride.
func (s *fraudService) SearchFrauds(ctx context.Context, name string) ([]*models.FraudView, error) {
	views, err := s.loadViews(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*models.FraudView, 0, len(views))
	for _, view := range views {
		if view.MatchesName(name) {
			matched = append(matched, view)
		}
	}

	s.logger.WithMethod("getFraudsByName").WithField("count", len(matched)).Info("Frauds searched")
	return matched, nil
}

func (s *fraudService) loadViews(ctx context.Context) ([]*models.FraudView, error) {
	docs, err := s.store.List(ctx, interfaces.CollectionFrauds)
	if err != nil {
		return nil, fmt.Errorf("failed to list frauds: %w", err)
	}
	if len(docs) == 0 {
		return nil, ErrNotFound
	}

	return enrichAll(ctx, docs, s.enrich), nil
}

func (s *fraudService) enrich(ctx context.Context, doc *interfaces.Document) *models.FraudView {
	fraud := models.DecodeFraud(doc.ID, doc.Data)
	return models.NewFraudView(
		fraud,
		s.resolver.ResolveUsername(ctx, fraud.FraudUserID),
		s.resolver.ResolveRide(ctx, fraud.RideID),
		s.location,
	)
}
