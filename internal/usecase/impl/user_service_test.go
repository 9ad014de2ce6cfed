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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixture struct {
	userRepo    *mockRepo.MockUserRepository
	productRepo *mockRepo.MockProductRepository
	hasher      *mockSvc.MockPasswordHasher
	service     usecase.UserUsecase
}

func newUserServiceFixture(t *testing.T) *userServiceFixture {
	t.Helper()

	userRepo := mockRepo.NewMockUserRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	return &userServiceFixture{
		userRepo:    userRepo,
		productRepo: productRepo,
		hasher:      hasher,
		service: NewUserService(UserServiceParams{
			UserRepo:    userRepo,
			ProductRepo: productRepo,
			Hasher:      hasher,
			Logger:      newDiscardLogger(),
		}),
	}
}

func validRegistration() *usecase.RegisterUserInput {
	return &usecase.RegisterUserInput{
		LastName:  "Martin",
		FirstName: "Alex",
		Phone:     "0600000000",
		Email:     "alex@example.com",
		Password:  "s3cret",
	}
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()

	f.hasher.EXPECT().Hash("s3cret").Return("$2a$10$digest", nil)
	f.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "alex@example.com" && u.PasswordHash == "$2a$10$digest"
		})).
		Run(func(_ context.Context, u *entity.User) {
			u.ID = "u1"
			u.Cart = []string{}
		}).
		Return(nil)

	user, err := f.service.RegisterUser(ctx, validRegistration())
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.NotEqual(t, "s3cret", user.PasswordHash)
	assert.Empty(t, user.Cart)
}

func TestUserService_RegisterUser_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*usecase.RegisterUserInput)
		details string
	}{
		{
			name:    "missing phone",
			mutate:  func(in *usecase.RegisterUserInput) { in.Phone = "" },
			details: "missing required fields: phone",
		},
		{
			name: "missing email and password",
			mutate: func(in *usecase.RegisterUserInput) {
				in.Email = ""
				in.Password = ""
			},
			details: "missing required fields: email, password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newUserServiceFixture(t)
			input := validRegistration()
			tt.mutate(input)

			user, err := f.service.RegisterUser(context.Background(), input)
			assert.Nil(t, user)
			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.details, appErr.Details())
		})
	}
}

func TestUserService_RegisterUser_DuplicateEmail(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()

	f.hasher.EXPECT().Hash(mock.Anything).Return("digest", nil)
	f.userRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateEmail)

	user, err := f.service.RegisterUser(ctx, validRegistration())
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_RegisterUser_HashFailure(t *testing.T) {
	f := newUserServiceFixture(t)

	f.hasher.EXPECT().Hash(mock.Anything).Return("", errors.New("password too long"))

	user, err := f.service.RegisterUser(context.Background(), validRegistration())
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestUserService_UpdateUser_HashesNewPassword(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()

	f.hasher.EXPECT().Hash("n3w").Return("new-digest", nil)
	f.userRepo.EXPECT().
		Update(ctx, "u1", mock.MatchedBy(func(u repository.UserUpdate) bool {
			return u.PasswordHash != nil && *u.PasswordHash == "new-digest" &&
				u.Phone != nil && *u.Phone == "0700000000" && u.Email == nil
		})).
		Return(&entity.User{ID: "u1", Phone: "0700000000", PasswordHash: "new-digest"}, nil)

	user, err := f.service.UpdateUser(ctx, "u1", &usecase.UpdateUserInput{
		Phone:    ptr("0700000000"),
		Password: ptr("n3w"),
	})
	require.NoError(t, err)
	assert.Equal(t, "0700000000", user.Phone)
}

func TestUserService_UpdateUser_RejectsClearedCredentials(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()

	_, err := f.service.UpdateUser(ctx, "u1", &usecase.UpdateUserInput{Email: ptr("")})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = f.service.UpdateUser(ctx, "u1", &usecase.UpdateUserInput{Password: ptr("")})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_UpdateUser_EmailConflict(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()

	f.userRepo.EXPECT().Update(ctx, "u1", mock.Anything).Return(nil, repository.ErrDuplicateEmail)

	_, err := f.service.UpdateUser(ctx, "u1", &usecase.UpdateUserInput{Email: ptr("taken@example.com")})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_GetAndDelete(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()

	f.userRepo.EXPECT().FindByID(ctx, "u1").Return(&entity.User{ID: "u1"}, nil)
	f.userRepo.EXPECT().Delete(ctx, "u1").Return(nil)
	f.userRepo.EXPECT().FindByID(ctx, "gone").Return(nil, repository.ErrUserNotFound)
	f.userRepo.EXPECT().List(ctx).Return([]*entity.User{{ID: "u1"}}, nil)

	user, err := f.service.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)

	users, err := f.service.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)

	require.NoError(t, f.service.DeleteUser(ctx, "u1"))

	_, err = f.service.GetUser(ctx, "gone")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_Cart(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()

	f.productRepo.EXPECT().FindByID(ctx, "p1").Return(&entity.Product{ID: "p1"}, nil)
	f.userRepo.EXPECT().AddToCart(ctx, "u1", "p1").Return([]string{"p1"}, nil)
	f.userRepo.EXPECT().FindByID(ctx, "u1").Return(&entity.User{ID: "u1", Cart: []string{"p1"}}, nil)
	f.userRepo.EXPECT().RemoveFromCart(ctx, "u1", "p1").Return([]string{}, nil)

	cart, err := f.service.AddToCart(ctx, "u1", "p1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, cart)

	cart, err = f.service.GetCart(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, cart)

	cart, err = f.service.RemoveFromCart(ctx, "u1", "p1")
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestUserService_AddToCart_UnknownProduct(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()

	f.productRepo.EXPECT().FindByID(ctx, "p9").Return(nil, repository.ErrProductNotFound)

	cart, err := f.service.AddToCart(ctx, "u1", "p9")
	assert.Nil(t, cart)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	f.userRepo.AssertNotCalled(t, "AddToCart", mock.Anything, mock.Anything, mock.Anything)
}
