package services

import (
	"context"
	"errors"
	"time"

	"rideadmin/internal/models"
	"rideadmin/internal/repositories/interfaces"
	"rideadmin/pkg/logger"
)

// ResolverService turns stored ids into display values. Lookups never fail:
// anything that cannot be resolved comes back as nil or zero.
type ResolverService interface {
	ResolveUsername(ctx context.Context, userID string) *string
	ResolveRide(ctx context.Context, rideID string) *models.Ride
	CountFraudsForUser(ctx context.Context, userID string) int
}

// ResolverCache is the read-through cache used for username and ride lookups.
type ResolverCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

type resolverService struct {
	store    interfaces.DocumentStore
	cache    ResolverCache
	cacheTTL time.Duration
	location *time.Location
	logger   *logger.Logger
}

func NewResolverService(
	store interfaces.DocumentStore,
	cache ResolverCache,
	cacheTTL time.Duration,
	location *time.Location,
	logger *logger.Logger,
) ResolverService {
	if location == nil {
		location = time.Local
	}
	return &resolverService{
		store:    store,
		cache:    cache,
		cacheTTL: cacheTTL,
		location: location,
		logger:   logger.WithField("service", "resolver"),
	}
}

func (s *resolverService) ResolveUsername(ctx context.Context, userID string) *string {
	if userID == "" {
		return nil
	}

	key := "resolver:username:" + userID
	var cached string
	if s.cacheGet(ctx, key, &cached) {
		return &cached
	}

	doc, err := s.store.Get(ctx, interfaces.CollectionUsers, userID)
	if err != nil {
		s.logLookupError("getUsernameById", userID, err)
		return nil
	}

	name, ok := doc.Data[models.UserFieldFirstName].(string)
	if !ok {
		return nil
	}

	s.cacheSet(ctx, key, name)
	return &name
}

func (s *resolverService) ResolveRide(ctx context.Context, rideID string) *models.Ride {
	if rideID == "" {
		return nil
	}

	key := "resolver:ride:" + rideID
	var cached models.Ride
	if s.cacheGet(ctx, key, &cached) {
		return &cached
	}

	doc, err := s.store.Get(ctx, interfaces.CollectionRides, rideID)
	if err != nil {
		s.logLookupError("getRideDataById", rideID, err)
		return nil
	}

	ride := models.DecodeRide(doc.Data, s.location)
	s.cacheSet(ctx, key, ride)
	return ride
}

func (s *resolverService) CountFraudsForUser(ctx context.Context, userID string) int {
	if userID == "" {
		return 0
	}

	docs, err := s.store.Query(ctx, interfaces.CollectionFrauds, models.FraudFieldFraudUserID, userID)
	if err != nil {
		s.logLookupError("getFraudCountsByUserID", userID, err)
		return 0
	}
	return len(docs)
}

func (s *resolverService) cacheGet(ctx context.Context, key string, dest interface{}) bool {
	if s.cache == nil {
		return false
	}
	return s.cache.Get(ctx, key, dest) == nil
}

func (s *resolverService) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value, s.cacheTTL); err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("Failed to cache resolved value")
	}
}

func (s *resolverService) logLookupError(method, id string, err error) {
	log := s.logger.WithMethod(method).WithField("id", id)
	if errors.Is(err, interfaces.ErrDocumentNotFound) {
		log.Debug("Referenced document not found")
		return
	}
	log.WithError(err).Error("Lookup failed")
}
