package impl

import (
	"context"
	"testing"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	mockRepo "shop/internal/mocks/repository"
	mockSvc "shop/internal/mocks/service"
	"shop/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Login(t *testing.T) {
	stored := &entity.User{ID: "u1", Email: "alex@example.com", PasswordHash: "digest"}

	tests := []struct {
		name     string
		setup    func(*mockRepo.MockUserRepository, *mockSvc.MockPasswordHasher)
		wantUser bool
		wantErr  error
		wantHTTP int
	}{
		{
			name: "correct password",
			setup: func(r *mockRepo.MockUserRepository, h *mockSvc.MockPasswordHasher) {
				r.EXPECT().FindByEmail(context.Background(), "alex@example.com").Return(stored, nil)
				h.EXPECT().Check("s3cret", "digest").Return(true, nil)
			},
			wantUser: true,
		},
		{
			name: "wrong password",
			setup: func(r *mockRepo.MockUserRepository, h *mockSvc.MockPasswordHasher) {
				r.EXPECT().FindByEmail(context.Background(), "alex@example.com").Return(stored, nil)
				h.EXPECT().Check("s3cret", "digest").Return(false, nil)
			},
			wantErr:  domainerrors.ErrInvalidCredentials,
			wantHTTP: 401,
		},
		{
			name: "unknown email",
			setup: func(r *mockRepo.MockUserRepository, _ *mockSvc.MockPasswordHasher) {
				r.EXPECT().FindByEmail(context.Background(), "alex@example.com").Return(nil, repository.ErrUserNotFound)
			},
			wantErr:  domainerrors.ErrUserNotFound,
			wantHTTP: 404,
		},
		{
			name: "malformed digest",
			setup: func(r *mockRepo.MockUserRepository, h *mockSvc.MockPasswordHasher) {
				r.EXPECT().FindByEmail(context.Background(), "alex@example.com").Return(stored, nil)
				h.EXPECT().Check("s3cret", "digest").Return(false, errors.New("hashedSecret too short"))
			},
			wantErr:  domainerrors.ErrPasswordHashFailed,
			wantHTTP: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mockRepo.NewMockUserRepository(t)
			hasher := mockSvc.NewMockPasswordHasher(t)
			tt.setup(userRepo, hasher)

			srv := NewAuthService(AuthServiceParams{UserRepo: userRepo, Hasher: hasher, Logger: newDiscardLogger()})

			user, err := srv.Login(context.Background(), &usecase.LoginInput{Email: "alex@example.com", Password: "s3cret"})
			if tt.wantUser {
				require.NoError(t, err)
				assert.Equal(t, stored, user)
				return
			}

			assert.Nil(t, user)
			require.ErrorIs(t, err, tt.wantErr)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.wantHTTP, appErr.HTTPCode())
		})
	}
}
