package user

import (
	"School-Canteen-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByUsername(ctx context.Context, username string) (*entities.User, error)
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		GetAllUsers(ctx context.Context) ([]*entities.User, error)
		GetPendingUsers(ctx context.Context) ([]*entities.User, error)
		UpdateUser(ctx context.Context, user *entities.User) error
		DeleteUser(ctx context.Context, id string) error

		// Allergies
		CreateAllergy(ctx context.Context, allergy *entities.Allergy) error
		GetAllAllergies(ctx context.Context) ([]*entities.Allergy, error)
		GetUserAllergy(ctx context.Context, userID string, allergyID string) (*entities.UserAllergy, error)
		GetUserAllergyIDs(ctx context.Context, userID string) ([]string, error)
		AddUserAllergy(ctx context.Context, userAllergy *entities.UserAllergy) error
		RemoveUserAllergy(ctx context.Context, userID string, allergyID string) error
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetAllUsers(ctx context.Context) ([]*entities.User, error) {
	var users []*entities.User
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) GetPendingUsers(ctx context.Context) ([]*entities.User, error) {
	var users []*entities.User
	if err := r.db.WithContext(ctx).
		Where("is_approved = ?", false).
		Order("created_at ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) DeleteUser(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entities.User{}, "id = ?", id).Error
}

func (r *userRepository) CreateAllergy(ctx context.Context, allergy *entities.Allergy) error {
	return r.db.WithContext(ctx).Create(allergy).Error
}

func (r *userRepository) GetAllAllergies(ctx context.Context) ([]*entities.Allergy, error) {
	var allergies []*entities.Allergy
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&allergies).Error; err != nil {
		return nil, err
	}
	return allergies, nil
}

func (r *userRepository) GetUserAllergy(ctx context.Context, userID string, allergyID string) (*entities.UserAllergy, error) {
	var userAllergy entities.UserAllergy
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND allergy_id = ?", userID, allergyID).
		First(&userAllergy).Error; err != nil {
		return nil, err
	}
	return &userAllergy, nil
}

func (r *userRepository) GetUserAllergyIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).
		Model(&entities.UserAllergy{}).
		Where("user_id = ?", userID).
		Pluck("allergy_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *userRepository) AddUserAllergy(ctx context.Context, userAllergy *entities.UserAllergy) error {
	return r.db.WithContext(ctx).Create(userAllergy).Error
}

func (r *userRepository) RemoveUserAllergy(ctx context.Context, userID string, allergyID string) error {
	return r.db.WithContext(ctx).
		Delete(&entities.UserAllergy{}, "user_id = ? AND allergy_id = ?", userID, allergyID).Error
}
