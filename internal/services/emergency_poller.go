package services

import (
	"context"
	"fmt"
	"time"

	"rideadmin/internal/models"
	"rideadmin/internal/repositories/interfaces"
	"rideadmin/internal/utils"
	"rideadmin/pkg/logger"
)

// EmergencyPoller watches the emergencies collection and announces growth.
// lastCount is only touched from the goroutine running Tick.
type EmergencyPoller struct {
	store     interfaces.DocumentStore
	emergency EmergencyService
	notifier  EmergencyNotifier
	interval  time.Duration
	lastCount int
	logger    *logger.Logger
}

func NewEmergencyPoller(
	store interfaces.DocumentStore,
	emergency EmergencyService,
	notifier EmergencyNotifier,
	interval time.Duration,
	logger *logger.Logger,
) *EmergencyPoller {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &EmergencyPoller{
		store:     store,
		emergency: emergency,
		notifier:  notifier,
		interval:  interval,
		logger:    logger.WithMethod("newEmergencyHit"),
	}
}

// Run ticks until ctx is cancelled.
func (p *EmergencyPoller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.logger.WithField("interval", p.interval.String()).Info("Emergency poller started")
	for {
		select {
		case <-ctx.Done():
			p.logger.Info("Emergency poller stopped")
			return
		case <-ticker.C:
			if view := p.Tick(ctx); view != nil {
				p.notifier.NotifyEmergency(ctx, view)
			}
		}
	}
}

// Tick runs one detection cycle and returns the newest emergency when the
// collection grew since the previous cycle.
func (p *EmergencyPoller) Tick(ctx context.Context) *models.EmergencyView {
	docs, err := p.store.List(ctx, interfaces.CollectionEmergencies)
	if err != nil {
		p.logger.WithError(fmt.Errorf("failed to list emergencies: %w", err)).Error("Error getting new emergency")
		return nil
	}

	if len(docs) == 0 {
		p.lastCount = 0
		return nil
	}
	if len(docs) <= p.lastCount {
		return nil
	}

	p.lastCount = len(docs)
	view := p.emergency.Enrich(ctx, newestEmergency(docs))

	p.logger.WithField("count", p.lastCount).Info("New emergency hit")
	return view
}

// LastCount reports the collection size seen on the last growing or empty cycle.
func (p *EmergencyPoller) LastCount() int {
	return p.lastCount
}

// newestEmergency picks the greatest timestamp, later documents winning ties.
// When the last document in store order has no timestamp it is taken as the
// newest, since timestamps cannot rank it.
func newestEmergency(docs []*interfaces.Document) *interfaces.Document {
	last := docs[len(docs)-1]
	if utils.SafeTime(last.Data[models.EmergencyFieldTimestamp]) == nil {
		return last
	}

	newest := -1
	var newestTS time.Time
	for i, doc := range docs {
		ts := utils.SafeTime(doc.Data[models.EmergencyFieldTimestamp])
		if ts == nil {
			continue
		}
		if newest == -1 || !ts.Before(newestTS) {
			newest, newestTS = i, *ts
		}
	}
	return docs[newest]
}
