package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/clinic-service/internal/config"
	"github.com/spec-kit/clinic-service/internal/events"
)

// NotificationService reacts to domain events. Delivery is a stub: events are
// logged with the configured sender/webhook so a real channel can be dropped
// in later without touching the services that publish.
type NotificationService struct {
	dispatcher events.Dispatcher
	cfg        config.NotificationConfig
	logger     *zap.Logger
}

// NewNotificationService constructs the service.
func NewNotificationService(dispatcher events.Dispatcher, cfg config.NotificationConfig, logger *zap.Logger) *NotificationService {
	return &NotificationService{dispatcher: dispatcher, cfg: cfg, logger: logger}
}

// RegisterHandlers subscribes the notification handlers to the dispatcher.
func (s *NotificationService) RegisterHandlers() {
	s.dispatcher.Subscribe(events.EventDoctorOnboarded, s.onDoctorOnboarded)
	s.dispatcher.Subscribe(events.EventAppointmentCreated, s.onAppointmentCreated)
	s.dispatcher.Subscribe(events.EventAppointmentStatusChanged, s.onAppointmentStatusChanged)
	s.dispatcher.Subscribe(events.EventDocumentUploaded, s.onDocumentUploaded)
}

func (s *NotificationService) onDoctorOnboarded(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.DoctorOnboardedPayload)
	if !ok {
		return nil
	}
	s.logger.Info("notify: doctor onboarded",
		zap.String("doctor_id", payload.DoctorID),
		zap.String("staff_id", payload.StaffID),
		zap.String("email_from", s.cfg.EmailFrom))
	return nil
}

func (s *NotificationService) onAppointmentCreated(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.AppointmentCreatedPayload)
	if !ok {
		return nil
	}
	s.logger.Info("notify: appointment created",
		zap.String("appointment_id", event.SubjectID),
		zap.String("patient_id", payload.PatientID),
		zap.String("doctor_id", payload.DoctorID),
		zap.Time("appointment_time", payload.AppointmentTime))
	return nil
}

func (s *NotificationService) onAppointmentStatusChanged(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.AppointmentStatusChangedPayload)
	if !ok {
		return nil
	}
	s.logger.Info("notify: appointment status changed",
		zap.String("appointment_id", event.SubjectID),
		zap.String("old_status", string(payload.OldStatus)),
		zap.String("new_status", string(payload.NewStatus)))
	return nil
}

func (s *NotificationService) onDocumentUploaded(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.DocumentUploadedPayload)
	if !ok {
		return nil
	}
	fields := []zap.Field{
		zap.String("document_id", event.SubjectID),
		zap.String("patient_id", payload.PatientID),
		zap.String("document_type", payload.DocumentType),
		zap.String("file_name", payload.FileName),
	}
	if s.cfg.WebhookURL != "" {
		fields = append(fields, zap.String("webhook_url", s.cfg.WebhookURL))
	}
	s.logger.Info("notify: document uploaded", fields...)
	return nil
}
