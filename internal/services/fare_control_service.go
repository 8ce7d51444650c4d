package services

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"rideadmin/internal/models"
	"rideadmin/internal/repositories/interfaces"
	"rideadmin/pkg/logger"
)

type FareControlService interface {
	GetFareControls(ctx context.Context) (*models.FareControls, error)
	UpdateFareControls(ctx context.Context, update *models.FareControlsUpdate) (*models.FareControls, error)
}

type fareControlService struct {
	store      interfaces.DocumentStore
	documentID string
	audit      *logger.AuditLogger
	logger     *logger.Logger
}

// NewFareControlService serves the single fare controls document identified by documentID.
func NewFareControlService(
	store interfaces.DocumentStore,
	documentID string,
	audit *logger.AuditLogger,
	logger *logger.Logger,
) FareControlService {
	return &fareControlService{
		store:      store,
		documentID: documentID,
		audit:      audit,
		logger:     logger.WithField("service", "fare_controls"),
	}
}

func (s *fareControlService) GetFareControls(ctx context.Context) (*models.FareControls, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	controls := models.DecodeFareControls(doc.Data)

	s.logger.WithMethod("getControls").Info("Controls fetched")
	return controls, nil
}

func (s *fareControlService) UpdateFareControls(ctx context.Context, update *models.FareControlsUpdate) (*models.FareControls, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	fields := update.Fields()
	if len(fields) > 0 {
		if err := s.store.Update(ctx, interfaces.CollectionControls, s.documentID, fields); err != nil {
			if errors.Is(err, interfaces.ErrDocumentNotFound) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("failed to update fare controls: %w", err)
		}
	}

	s.auditChanges(doc.Data, fields)
	s.logger.WithMethod("updateFare").Info("Fare updated")
	return update.Apply(doc.Data), nil
}

func (s *fareControlService) load(ctx context.Context) (*interfaces.Document, error) {
	doc, err := s.store.Get(ctx, interfaces.CollectionControls, s.documentID)
	if err != nil {
		if errors.Is(err, interfaces.ErrDocumentNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get fare controls: %w", err)
	}
	return doc, nil
}

func (s *fareControlService) auditChanges(stored, updated map[string]interface{}) {
	if s.audit == nil {
		return
	}
	for key, value := range updated {
		if !reflect.DeepEqual(stored[key], value) {
			s.audit.LogConfigChange(key, stored[key], value)
		}
	}
}
