package mongodb

import (
	"context"
	"time"

	"shop/config"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// userRepository implements repository.UserRepository on a MongoDB collection.
type userRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *mongo.Database, cfg *config.Config) repository.UserRepository {
	return &userRepository{
		coll: db.Collection(cfg.Mongo.UserCollection),
		now:  storeNow,
	}
}

// storeNow returns the current time at the millisecond precision BSON dates keep.
func storeNow() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// Create inserts the user with an empty cart. A taken email surfaces as ErrDuplicateEmail
// from the unique index, so concurrent creates cannot both succeed.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM, err := fromUserDomain(user)
	if err != nil {
		return err
	}

	now := repo.now()
	userM.ID = primitive.NewObjectID()
	userM.Cart = []primitive.ObjectID{}
	userM.CreatedAt = now
	userM.UpdatedAt = now

	if _, err := repo.coll.InsertOne(ctx, userM); err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID.Hex()
	user.Cart = []string{}
	user.CreatedAt = now
	user.UpdatedAt = now

	return nil
}

// List returns all users in natural order.
func (repo *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	cursor, err := repo.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list users")
	}

	var usersM []model.UserModel
	if err := cursor.All(ctx, &usersM); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode users")
	}

	users := make([]*entity.User, 0, len(usersM))
	for i := range usersM {
		users = append(users, toUserDomain(&usersM[i]))
	}

	return users, nil
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	return repo.findOne(ctx, bson.M{"_id": oid}, "failed to find user by id")
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, bson.M{"email": email}, "failed to find user by email")
}

func (repo *userRepository) findOne(ctx context.Context, filter bson.M, details string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.coll.FindOne(ctx, filter).Decode(&userM); err != nil {
		if isNotFound(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, details)
	}

	return toUserDomain(&userM), nil
}

// Update merges the supplied fields over the stored document and returns the new state.
func (repo *userRepository) Update(ctx context.Context, id string, update repository.UserUpdate) (*entity.User, error) {
	if update.IsEmpty() {
		return repo.FindByID(ctx, id)
	}

	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	set := bson.D{}
	appendIfSet := func(key string, value *string) {
		if value != nil {
			set = append(set, bson.E{Key: key, Value: *value})
		}
	}
	appendIfSet("lastName", update.LastName)
	appendIfSet("firstName", update.FirstName)
	appendIfSet("phone", update.Phone)
	appendIfSet("email", update.Email)
	appendIfSet("passwordHash", update.PasswordHash)
	set = append(set, bson.E{Key: "updatedAt", Value: repo.now()})

	return repo.findOneAndUpdate(ctx, oid, bson.D{{Key: "$set", Value: set}}, "failed to update user")
}

// Delete removes the user permanently.
func (repo *userRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := repo.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete user")
	}
	if res.DeletedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// AddToCart appends productID to the end of the cart.
func (repo *userRepository) AddToCart(ctx context.Context, id, productID string) ([]string, error) {
	return repo.changeCart(ctx, id, productID, "$push", "failed to add product to cart")
}

// RemoveFromCart pulls every occurrence of productID from the cart.
func (repo *userRepository) RemoveFromCart(ctx context.Context, id, productID string) ([]string, error) {
	return repo.changeCart(ctx, id, productID, "$pull", "failed to remove product from cart")
}

func (repo *userRepository) changeCart(ctx context.Context, id, productID, operator, details string) ([]string, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	productOID, err := parseID(productID)
	if err != nil {
		return nil, err
	}

	user, err := repo.findOneAndUpdate(ctx, oid, bson.D{
		{Key: operator, Value: bson.M{"cart": productOID}},
		{Key: "$set", Value: bson.M{"updatedAt": repo.now()}},
	}, details)
	if err != nil {
		return nil, err
	}

	return user.Cart, nil
}

func (repo *userRepository) findOneAndUpdate(ctx context.Context, oid primitive.ObjectID, update bson.D, details string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&userM)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrUserNotFound
		}
		if isUniqueConstraintViolation(err) {
			return nil, repository.ErrDuplicateEmail
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, details)
	}

	return toUserDomain(&userM), nil
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	cart := make([]string, 0, len(data.Cart))
	for _, productID := range data.Cart {
		cart = append(cart, productID.Hex())
	}

	return &entity.User{
		ID:           data.ID.Hex(),
		LastName:     data.LastName,
		FirstName:    data.FirstName,
		Phone:        data.Phone,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Cart:         cart,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) (*model.UserModel, error) {
	cart := make([]primitive.ObjectID, 0, len(data.Cart))
	for _, productID := range data.Cart {
		oid, err := parseID(productID)
		if err != nil {
			return nil, err
		}
		cart = append(cart, oid)
	}

	return &model.UserModel{
		LastName:     data.LastName,
		FirstName:    data.FirstName,
		Phone:        data.Phone,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Cart:         cart,
	}, nil
}
