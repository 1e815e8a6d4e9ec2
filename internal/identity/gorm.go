package identity

import (
	"context"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/petshopsuite/petshop-api/internal/models"
)

type GormVerifier struct {
	db *gorm.DB
}

func NewGormVerifier(db *gorm.DB) *GormVerifier {
	return &GormVerifier{db: db}
}

func (v *GormVerifier) ReverifyPassword(
	ctx context.Context,
	userID uint,
	password string,
) error {

	var user models.User
	if err := v.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return &AuthenticationError{Reason: "user_not_found"}
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash),
		[]byte(password),
	); err != nil {
		return &AuthenticationError{Reason: "invalid_password"}
	}

	return nil
}

// Compile-time check
var _ Verifier = (*GormVerifier)(nil)
