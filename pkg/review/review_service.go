package review

import (
	"School-Canteen-Backend/domain"
	"School-Canteen-Backend/entities"
	"School-Canteen-Backend/pkg/menu"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ReviewService interface {
		Add(ctx context.Context, userID string, req *domain.AddReviewRequest) error
		ListByDish(ctx context.Context, dishID string) ([]*domain.ReviewResponse, error)
		ListAll(ctx context.Context) ([]*domain.ReviewResponse, error)
	}

	reviewService struct {
		reviewRepository ReviewRepository
		menuRepository   menu.MenuRepository
	}
)

func NewReviewService(reviewRepository ReviewRepository, menuRepository menu.MenuRepository) ReviewService {
	return &reviewService{
		reviewRepository: reviewRepository,
		menuRepository:   menuRepository,
	}
}

func (s *reviewService) Add(ctx context.Context, userID string, req *domain.AddReviewRequest) error {
	if req.Rating < 1 || req.Rating > 5 {
		return domain.ErrInvalidRating
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	dishUUID, err := uuid.Parse(req.DishID)
	if err != nil {
		return domain.ErrParseUUID
	}

	if _, err := s.menuRepository.GetDishByID(ctx, req.DishID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrDishNotFound
		}
		return err
	}

	review := &entities.Review{
		ID:     uuid.New(),
		UserID: userUUID,
		DishID: dishUUID,
		Text:   req.Text,
		Rating: req.Rating,
	}
	return s.reviewRepository.CreateReview(ctx, review)
}

func (s *reviewService) ListByDish(ctx context.Context, dishID string) ([]*domain.ReviewResponse, error) {
	reviews, err := s.reviewRepository.GetReviewsByDish(ctx, dishID)
	if err != nil {
		return nil, err
	}
	return toReviewResponses(reviews), nil
}

func (s *reviewService) ListAll(ctx context.Context) ([]*domain.ReviewResponse, error) {
	reviews, err := s.reviewRepository.GetAllReviews(ctx)
	if err != nil {
		return nil, err
	}
	return toReviewResponses(reviews), nil
}

func toReviewResponses(reviews []*entities.Review) []*domain.ReviewResponse {
	result := make([]*domain.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		resp := &domain.ReviewResponse{
			ID:        r.ID.String(),
			DishID:    r.DishID.String(),
			Text:      r.Text,
			Rating:    r.Rating,
			CreatedAt: r.CreatedAt,
		}
		if r.User != nil {
			resp.UserName = r.User.FullName
		}
		if r.Dish != nil {
			resp.DishName = r.Dish.Name
		}
		result = append(result, resp)
	}
	return result
}
