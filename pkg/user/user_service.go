package user

import (
	"School-Canteen-Backend/domain"
	"School-Canteen-Backend/entities"
	"School-Canteen-Backend/internal/utils/mailing"
	"School-Canteen-Backend/pkg/jwt"
	"School-Canteen-Backend/pkg/notification"
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req *domain.RegisterRequest) (*domain.UserResponse, error)
		Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (*domain.UserResponse, error)
		GetUsers(ctx context.Context) ([]*domain.UserResponse, error)
		GetPendingUsers(ctx context.Context) ([]*domain.UserResponse, error)
		ApproveUser(ctx context.Context, userID string) error
		RejectUser(ctx context.Context, userID string) error
		CreateAllergy(ctx context.Context, req *domain.CreateAllergyRequest) error
		GetAllergies(ctx context.Context, userID string) ([]*domain.AllergyResponse, error)
		ToggleAllergy(ctx context.Context, userID string, allergyID string) error
	}

	userService struct {
		userRepository      UserRepository
		jwtService          jwt.JWTService
		notificationService notification.NotificationService
	}
)

func NewUserService(
	userRepository UserRepository,
	jwtService jwt.JWTService,
	notificationService notification.NotificationService,
) UserService {
	return &userService{
		userRepository:      userRepository,
		jwtService:          jwtService,
		notificationService: notificationService,
	}
}

// Register creates a student account that stays inactive until an admin
// approves it. Cooks and admins are provisioned out of band.
func (s *userService) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.UserResponse, error) {
	if _, err := s.userRepository.GetUserByUsername(ctx, req.Username); err == nil {
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		ID:         uuid.New(),
		Username:   req.Username,
		Email:      req.Email,
		Password:   string(hashed),
		Role:       domain.RoleStudent,
		Balance:    0,
		FullName:   req.FullName,
		ClassName:  req.ClassName,
		IsApproved: false,
	}
	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.notificationService.NotifyRole(ctx, domain.RoleAdmin,
		fmt.Sprintf("New registration from %s is waiting for approval", user.FullName))

	return toUserResponse(user), nil
}

func (s *userService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrWrongCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, domain.ErrWrongCredentials
	}

	if !user.IsApproved {
		return nil, domain.ErrAccountNotApproved
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)
	return &domain.LoginResponse{
		Token: token,
		Role:  user.Role,
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (*domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return toUserResponse(user), nil
}

func (s *userService) GetUsers(ctx context.Context) ([]*domain.UserResponse, error) {
	users, err := s.userRepository.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}
	return toUserResponses(users), nil
}

func (s *userService) GetPendingUsers(ctx context.Context) ([]*domain.UserResponse, error) {
	users, err := s.userRepository.GetPendingUsers(ctx)
	if err != nil {
		return nil, err
	}
	return toUserResponses(users), nil
}

func (s *userService) ApproveUser(ctx context.Context, userID string) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	if user.IsApproved {
		return domain.ErrUserAlreadyActive
	}

	user.IsApproved = true
	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return err
	}

	s.notificationService.Notify(ctx, user.ID.String(), "Your account has been approved, welcome!")

	if user.Email != "" {
		go func(email, name string) {
			body := fmt.Sprintf("<p>Hi %s,</p><p>Your canteen account has been approved. You can log in now.</p>", name)
			if err := mailing.SendMail(email, "Account approved", body); err != nil {
				log.Errorf("failed to send approval mail to %s: %v", email, err)
			}
		}(user.Email, user.FullName)
	}

	return nil
}

// RejectUser removes a pending registration. Approved accounts cannot be
// rejected this way.
func (s *userService) RejectUser(ctx context.Context, userID string) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	if user.IsApproved {
		return domain.ErrUserAlreadyActive
	}

	return s.userRepository.DeleteUser(ctx, user.ID.String())
}

func (s *userService) CreateAllergy(ctx context.Context, req *domain.CreateAllergyRequest) error {
	allergy := &entities.Allergy{
		ID:   uuid.New(),
		Name: req.Name,
	}
	return s.userRepository.CreateAllergy(ctx, allergy)
}

// GetAllergies lists every known allergy with the user's selections flagged.
func (s *userService) GetAllergies(ctx context.Context, userID string) ([]*domain.AllergyResponse, error) {
	allergies, err := s.userRepository.GetAllAllergies(ctx)
	if err != nil {
		return nil, err
	}

	selectedIDs, err := s.userRepository.GetUserAllergyIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	selected := make(map[string]bool, len(selectedIDs))
	for _, id := range selectedIDs {
		selected[id] = true
	}

	result := make([]*domain.AllergyResponse, 0, len(allergies))
	for _, a := range allergies {
		result = append(result, &domain.AllergyResponse{
			ID:       a.ID.String(),
			Name:     a.Name,
			Selected: selected[a.ID.String()],
		})
	}
	return result, nil
}

func (s *userService) ToggleAllergy(ctx context.Context, userID string, allergyID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	allergyUUID, err := uuid.Parse(allergyID)
	if err != nil {
		return domain.ErrParseUUID
	}

	if _, err := s.userRepository.GetUserAllergy(ctx, userID, allergyID); err == nil {
		return s.userRepository.RemoveUserAllergy(ctx, userID, allergyID)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return s.userRepository.AddUserAllergy(ctx, &entities.UserAllergy{
		ID:        uuid.New(),
		UserID:    userUUID,
		AllergyID: allergyUUID,
	})
}

func toUserResponse(user *entities.User) *domain.UserResponse {
	return &domain.UserResponse{
		ID:         user.ID.String(),
		Username:   user.Username,
		Email:      user.Email,
		Role:       user.Role,
		Balance:    user.Balance,
		FullName:   user.FullName,
		ClassName:  user.ClassName,
		IsApproved: user.IsApproved,
		CreatedAt:  user.CreatedAt,
	}
}

func toUserResponses(users []*entities.User) []*domain.UserResponse {
	result := make([]*domain.UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, toUserResponse(u))
	}
	return result
}
