package sqlite

import (
	"context"
	"errors"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"gorm.io/gorm"
)

type userRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

func toUser(row userRow) (user.User, error) {
	role, err := user.ParseRole(row.Role)
	if err != nil {
		return user.User{}, err
	}
	return user.User{
		ID:           row.ID,
		Email:        row.Email,
		Name:         row.Name,
		PasswordHash: row.PasswordHash,
		Role:         role,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}, nil
}

func (r *userRepositoryImpl) first(ctx context.Context, query string, arg string) (user.User, error) {
	var row userRow
	err := conn(ctx, r.db).Where(query, arg).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user.User{}, user.ErrUserNotFound
	}
	if err != nil {
		return user.User{}, err
	}
	return toUser(row)
}

// ExistsByEmail implements user.UserRepository.
func (r *userRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := conn(ctx, r.db).Model(&userRow{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	row := userRow{
		ID:           newUser.ID,
		Email:        newUser.Email,
		Name:         newUser.Name,
		PasswordHash: newUser.PasswordHash,
		Role:         string(newUser.Role),
		CreatedAt:    newUser.CreatedAt,
		UpdatedAt:    newUser.CreatedAt,
	}
	if err := conn(ctx, r.db).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return user.User{}, user.ErrUserEmailExists
		}
		return user.User{}, err
	}
	return toUser(row)
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return r.first(ctx, "email = ?", email)
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	return r.first(ctx, "id = ?", id)
}
