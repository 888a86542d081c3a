package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ptit-dev/qldsv-api/internal/models"
	appErrors "github.com/ptit-dev/qldsv-api/pkg/errors"
)

type notificationRepository interface {
	NotificationsFor(recipient string) []models.Notification
	CreateNotification(notification models.Notification)
	MarkNotificationRead(id, recipient string) error
}

// CreateNotificationRequest describes an announcement payload.
type CreateNotificationRequest struct {
	Title     string `json:"title" validate:"required"`
	Content   string `json:"content" validate:"required"`
	Recipient string `json:"recipient" validate:"required"`
}

// NotificationService handles announcement delivery and read flags.
type NotificationService struct {
	repo      notificationRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewNotificationService constructs NotificationService.
func NewNotificationService(repo notificationRepository, validate *validator.Validate, logger *zap.Logger) *NotificationService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{repo: repo, validator: validate, logger: logger}
}

// Create publishes a notification to a recipient account.
func (s *NotificationService) Create(ctx context.Context, req CreateNotificationRequest) (*models.Notification, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid notification payload")
	}
	notification := models.Notification{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Content:   req.Content,
		Recipient: req.Recipient,
		CreatedAt: time.Now().UTC(),
	}
	s.repo.CreateNotification(notification)
	s.logger.Info("notification created", zap.String("recipient", req.Recipient))
	return &notification, nil
}

// ListFor returns the recipient's notifications.
func (s *NotificationService) ListFor(ctx context.Context, recipient string) []models.Notification {
	return s.repo.NotificationsFor(recipient)
}

// MarkRead flips the read flag; only the recipient may do so.
func (s *NotificationService) MarkRead(ctx context.Context, id, recipient string) error {
	if err := s.repo.MarkNotificationRead(id, recipient); err != nil {
		return appErrors.Clone(appErrors.ErrNotFound, "notification not found")
	}
	return nil
}
