// file: internals/features/users/user/service/user_service.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "kodingku_backend/internals/features/users/user/model"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// GetByID mengambil satu user by primary key (mirror read-only).
func (s *UserService) GetByID(id uuid.UUID) (*userModel.UserModel, error) {
	var u userModel.UserModel
	if err := s.DB.First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
