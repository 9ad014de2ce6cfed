package usecase

import (
	"context"

	"shop/internal/domain/entity"
)

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// AuthUsecase verifies credentials. No token or session is issued.
type AuthUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*entity.User, error)
}
