package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "shop/internal/delivery/context"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/domain/service"
	"shop/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	hasher      service.PasswordHasher
	logger      *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	ProductRepo repository.ProductRepository
	Hasher      service.PasswordHasher
	Logger      *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:    params.UserRepo,
		productRepo: params.ProductRepo,
		hasher:      params.Hasher,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser validates presence of every field, hashes the password and stores the account.
// A taken email is reported by the store's unique index.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*entity.User, error) {
	if missing := missingRegistrationFields(input); len(missing) > 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("missing required fields: " + strings.Join(missing, ", "))
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		LastName:     input.LastName,
		FirstName:    input.FirstName,
		Phone:        input.Phone,
		Email:        input.Email,
		PasswordHash: hash,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, translateRepoError(err, "failed to create user")
	}

	srv.log(ctx).Debug("Registration completed", slog.String("userID", user.ID))

	return user, nil
}

func missingRegistrationFields(input *usecase.RegisterUserInput) []string {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"lastName", input.LastName},
		{"firstName", input.FirstName},
		{"phone", input.Phone},
		{"email", input.Email},
		{"password", input.Password},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}

	return missing
}

func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, translateRepoError(err, "failed to list users")
	}

	return users, nil
}

func (srv *userService) GetUser(ctx context.Context, id string) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "failed to get user")
	}

	return user, nil
}

// UpdateUser merges the supplied fields into the account. A new password is hashed first.
// Email and password may be changed but not cleared.
func (srv *userService) UpdateUser(ctx context.Context, id string, input *usecase.UpdateUserInput) (*entity.User, error) {
	if input.Email != nil && *input.Email == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email must not be empty")
	}
	if input.Password != nil && *input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("password must not be empty")
	}

	update := repository.UserUpdate{
		LastName:  input.LastName,
		FirstName: input.FirstName,
		Phone:     input.Phone,
		Email:     input.Email,
	}

	if input.Password != nil {
		hash, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to hash password", slog.String("userID", id), slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}
		update.PasswordHash = &hash
	}

	user, err := srv.userRepo.Update(ctx, id, update)
	if err != nil {
		srv.log(ctx).Warn("Failed to update user", slog.String("userID", id), slog.Any("error", err))

		return nil, translateRepoError(err, "failed to update user")
	}

	srv.log(ctx).Debug("User updated", slog.String("userID", id))

	return user, nil
}

func (srv *userService) DeleteUser(ctx context.Context, id string) error {
	if err := srv.userRepo.Delete(ctx, id); err != nil {
		srv.log(ctx).Warn("Failed to delete user", slog.String("userID", id), slog.Any("error", err))

		return translateRepoError(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted", slog.String("userID", id))

	return nil
}

func (srv *userService) GetCart(ctx context.Context, userID string) ([]string, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, translateRepoError(err, "failed to get cart")
	}

	return user.Cart, nil
}

// AddToCart appends an existing product to the user's cart.
func (srv *userService) AddToCart(ctx context.Context, userID, productID string) ([]string, error) {
	if _, err := srv.productRepo.FindByID(ctx, productID); err != nil {
		return nil, translateRepoError(err, "failed to resolve cart product")
	}

	cart, err := srv.userRepo.AddToCart(ctx, userID, productID)
	if err != nil {
		srv.log(ctx).Warn("Failed to add product to cart", slog.String("userID", userID), slog.String("productID", productID), slog.Any("error", err))

		return nil, translateRepoError(err, "failed to add product to cart")
	}

	return cart, nil
}

// RemoveFromCart drops every occurrence of productID. The product itself may no longer exist.
func (srv *userService) RemoveFromCart(ctx context.Context, userID, productID string) ([]string, error) {
	cart, err := srv.userRepo.RemoveFromCart(ctx, userID, productID)
	if err != nil {
		srv.log(ctx).Warn("Failed to remove product from cart", slog.String("userID", userID), slog.String("productID", productID), slog.Any("error", err))

		return nil, translateRepoError(err, "failed to remove product from cart")
	}

	return cart, nil
}
