package services

import (
	"context"
	"fmt"
	"strings"

	"rideadmin/internal/models"
	"rideadmin/internal/utils"
	"rideadmin/pkg/logger"
	"rideadmin/pkg/push"
	"rideadmin/pkg/sms"
)

// EmergencyNotifier delivers a newly detected emergency to every configured channel.
type EmergencyNotifier interface {
	NotifyEmergency(ctx context.Context, view *models.EmergencyView)
}

// EmergencySink is one delivery channel for emergency alerts.
type EmergencySink interface {
	Name() string
	Deliver(ctx context.Context, view *models.EmergencyView) error
}

type emergencyBroadcaster struct {
	sinks  []EmergencySink
	logger *logger.Logger
}

func NewEmergencyBroadcaster(logger *logger.Logger, sinks ...EmergencySink) EmergencyNotifier {
	return &emergencyBroadcaster{
		sinks:  sinks,
		logger: logger.WithField("service", "emergency_broadcaster"),
	}
}

func (b *emergencyBroadcaster) NotifyEmergency(ctx context.Context, view *models.EmergencyView) {
	for _, sink := range b.sinks {
		if err := sink.Deliver(ctx, view); err != nil {
			b.logger.WithError(err).WithField("sink", sink.Name()).Error("Failed to deliver emergency")
			continue
		}
		b.logger.WithField("sink", sink.Name()).Debug("Emergency delivered")
	}
}

// Broadcaster is satisfied by the websocket hub.
type Broadcaster interface {
	Broadcast(event string, payload interface{}) error
}

type websocketSink struct {
	hub Broadcaster
}

func NewWebSocketSink(hub Broadcaster) EmergencySink {
	return &websocketSink{hub: hub}
}

func (s *websocketSink) Name() string { return "websocket" }

func (s *websocketSink) Deliver(_ context.Context, view *models.EmergencyView) error {
	return s.hub.Broadcast(utils.EventNewEmergency, view)
}

type pushSink struct {
	provider push.PushProvider
	topic    string
}

// NewPushSink publishes emergencies to an FCM topic the admin apps subscribe to.
func NewPushSink(provider push.PushProvider, topic string) EmergencySink {
	return &pushSink{provider: provider, topic: topic}
}

func (s *pushSink) Name() string { return "push" }

func (s *pushSink) Deliver(ctx context.Context, view *models.EmergencyView) error {
	data := map[string]string{
		"event":    utils.EventNewEmergency,
		"pushedBy": view.PushedBy,
		"username": view.Username,
		"reason":   view.Reason,
		"date":     view.Date,
		"time":     view.Time,
	}
	if view.RideID != nil {
		data["rideId"] = *view.RideID
	}

	_, err := s.provider.SendNotification(ctx, &push.NotificationRequest{
		Topic:    s.topic,
		Title:    "New emergency",
		Body:     alertText(view),
		Data:     data,
		Priority: "high",
	})
	return err
}

type smsSink struct {
	provider   sms.SMSProvider
	recipients []string
}

// NewSMSSink texts every on-call recipient.
func NewSMSSink(provider sms.SMSProvider, recipients []string) EmergencySink {
	return &smsSink{provider: provider, recipients: recipients}
}

func (s *smsSink) Name() string { return "sms" }

func (s *smsSink) Deliver(ctx context.Context, view *models.EmergencyView) error {
	message := "Emergency alert: " + alertText(view)
	requests := make([]*sms.SMSRequest, len(s.recipients))
	for i, to := range s.recipients {
		requests[i] = &sms.SMSRequest{To: to, Message: message, Type: "transactional"}
	}

	responses, err := s.provider.SendBulkSMS(ctx, requests)
	if err != nil {
		return err
	}

	var failed []string
	for i, resp := range responses {
		if resp != nil && resp.Error != "" {
			failed = append(failed, s.recipients[i])
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("sms delivery failed for %s", strings.Join(failed, ", "))
	}
	return nil
}

func alertText(view *models.EmergencyView) string {
	who := view.Username
	if who == "" {
		who = view.PushedBy
	}
	text := fmt.Sprintf("%s: %s", who, view.Reason)
	if view.RideData != nil && view.RideData.Pickup != "" {
		text += fmt.Sprintf(" (ride %s to %s)", view.RideData.Pickup, view.RideData.Dropoff)
	}
	return text
}
