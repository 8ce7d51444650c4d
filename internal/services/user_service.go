package services

import (
	"context"
	"errors"
	"fmt"

	"rideadmin/internal/models"
	"rideadmin/internal/repositories/interfaces"
	"rideadmin/pkg/logger"
)

type UserService interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
	GetUser(ctx context.Context, userID string) (*models.User, error)
	SearchUsers(ctx context.Context, name string) ([]*models.User, error)
	BanUser(ctx context.Context, userID string, req *models.BanUserRequest) error
}

type userService struct {
	store    interfaces.DocumentStore
	resolver ResolverService
	audit    *logger.AuditLogger
	logger   *logger.Logger
}

func NewUserService(
	store interfaces.DocumentStore,
	resolver ResolverService,
	audit *logger.AuditLogger,
	logger *logger.Logger,
) UserService {
	return &userService{
		store:    store,
		resolver: resolver,
		audit:    audit,
		logger:   logger.WithField("service", "user"),
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]*models.User, error) {
	docs, err := s.store.List(ctx, interfaces.CollectionUsers)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if len(docs) == 0 {
		return nil, ErrNotFound
	}

	users := enrichAll(ctx, docs, s.decodeWithFraudCount)

	s.logger.WithMethod("getUsers").WithField("count", len(users)).Info("Users fetched")
	return users, nil
}

func (s *userService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	doc, err := s.store.Get(ctx, interfaces.CollectionUsers, userID)
	if err != nil {
		if errors.Is(err, interfaces.ErrDocumentNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user := s.decodeWithFraudCount(ctx, doc)

	s.logger.WithMethod("getUserbyID").WithField("user_id", userID).Info("User fetched")
	return user, nil
}

func (s *userService) SearchUsers(ctx context.Context, name string) ([]*models.User, error) {
	docs, err := s.store.List(ctx, interfaces.CollectionUsers)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if len(docs) == 0 {
		return nil, ErrNotFound
	}

	matched := make([]*interfaces.Document, 0, len(docs))
	for _, doc := range docs {
		if models.DecodeUser(doc.ID, doc.Data).MatchesName(name) {
			matched = append(matched, doc)
		}
	}
	users := enrichAll(ctx, matched, s.decodeWithFraudCount)

	s.logger.WithMethod("getUsersByName").WithField("count", len(users)).Info("Users searched")
	return users, nil
}

func (s *userService) BanUser(ctx context.Context, userID string, req *models.BanUserRequest) error {
	if _, err := s.store.Get(ctx, interfaces.CollectionUsers, userID); err != nil {
		if errors.Is(err, interfaces.ErrDocumentNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	err := s.store.Update(ctx, interfaces.CollectionUsers, userID, map[string]interface{}{
		models.UserFieldIsBanned: req.IsBanned,
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrDocumentNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	action := "unban_user"
	if req.IsBanned {
		action = "ban_user"
	}
	if s.audit != nil {
		s.audit.LogAction(action, interfaces.CollectionUsers, userID, map[string]interface{}{
			"is_banned": req.IsBanned,
		})
	}
	s.logger.WithMethod("banUser").WithFields(map[string]interface{}{
		"user_id":   userID,
		"is_banned": req.IsBanned,
	}).Info("User ban status updated")

	return nil
}

func (s *userService) decodeWithFraudCount(ctx context.Context, doc *interfaces.Document) *models.User {
	user := models.DecodeUser(doc.ID, doc.Data)
	user.FraudCount = s.resolver.CountFraudsForUser(ctx, doc.ID)
	return user
}
