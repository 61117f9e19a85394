package notification

import (
	"School-Canteen-Backend/domain"
	"School-Canteen-Backend/entities"
	"context"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

type (
	// NotificationService is a fire-and-forget sink: Notify and NotifyRole
	// log delivery problems instead of returning them, so a failed
	// notification can never roll back the operation that triggered it.
	NotificationService interface {
		Notify(ctx context.Context, userID string, text string)
		NotifyRole(ctx context.Context, role string, text string)
		List(ctx context.Context, userID string) ([]*domain.NotificationResponse, error)
		UnreadCount(ctx context.Context, userID string) (int64, error)
	}

	notificationService struct {
		notificationRepository NotificationRepository
	}
)

func NewNotificationService(notificationRepository NotificationRepository) NotificationService {
	return &notificationService{
		notificationRepository: notificationRepository,
	}
}

func (s *notificationService) Notify(ctx context.Context, userID string, text string) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		log.Errorf("notification skipped, bad user id %q: %v", userID, err)
		return
	}

	notification := &entities.Notification{
		ID:     uuid.New(),
		UserID: userUUID,
		Text:   text,
	}
	if err := s.notificationRepository.CreateNotification(ctx, notification); err != nil {
		log.Errorf("failed to store notification for %s: %v", userID, err)
	}
}

func (s *notificationService) NotifyRole(ctx context.Context, role string, text string) {
	ids, err := s.notificationRepository.GetUserIDsByRole(ctx, role)
	if err != nil {
		log.Errorf("failed to resolve %s users for notification: %v", role, err)
		return
	}
	for _, id := range ids {
		s.Notify(ctx, id.String(), text)
	}
}

// List returns the user's notifications newest first and marks them read,
// mirroring the notification screen behavior.
func (s *notificationService) List(ctx context.Context, userID string) ([]*domain.NotificationResponse, error) {
	notifications, err := s.notificationRepository.GetUserNotifications(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.notificationRepository.MarkAllRead(ctx, userID); err != nil {
		return nil, err
	}

	result := make([]*domain.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		result = append(result, &domain.NotificationResponse{
			ID:        n.ID.String(),
			Text:      n.Text,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		})
	}
	return result, nil
}

func (s *notificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	return s.notificationRepository.CountUnread(ctx, userID)
}
