package mongodb

import (
	"context"

	"shop/config"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/errors"
	"shop/internal/infra/persistence/model"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// productRepository implements repository.ProductRepository on a MongoDB collection.
type productRepository struct {
	coll *mongo.Collection
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *mongo.Database, cfg *config.Config) repository.ProductRepository {
	return &productRepository{
		coll: db.Collection(cfg.Mongo.ProductCollection),
	}
}

// Create inserts the product and assigns its ID.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM, err := fromProductDomain(product)
	if err != nil {
		return err
	}
	productM.ID = primitive.NewObjectID()

	if _, err := repo.coll.InsertOne(ctx, productM); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID.Hex()

	return nil
}

// List returns all products in natural order.
func (repo *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	cursor, err := repo.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list products")
	}

	var productsM []model.ProductModel
	if err := cursor.All(ctx, &productsM); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode products")
	}

	products := make([]*entity.Product, 0, len(productsM))
	for i := range productsM {
		product, err := toProductDomain(&productsM[i])
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, nil
}

// FindByID retrieves a single product by its ID.
func (repo *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var productM model.ProductModel
	if err := repo.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&productM); err != nil {
		if isNotFound(err) {
			return nil, repository.ErrProductNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find product by id")
	}

	return toProductDomain(&productM)
}

// Update sets the supplied fields in a single atomic document update and returns the new state.
func (repo *productRepository) Update(ctx context.Context, id string, update repository.ProductUpdate) (*entity.Product, error) {
	if update.IsEmpty() {
		return repo.FindByID(ctx, id)
	}

	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	set := bson.D{}
	if update.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *update.Name})
	}
	if update.Price != nil {
		price, err := toDecimal128(*update.Price)
		if err != nil {
			return nil, err
		}
		set = append(set, bson.E{Key: "price", Value: price})
	}
	if update.Category != nil {
		set = append(set, bson.E{Key: "category", Value: *update.Category})
	}

	var productM model.ProductModel
	err = repo.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.D{{Key: "$set", Value: set}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&productM)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrProductNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}

	return toProductDomain(&productM)
}

// Delete removes the product permanently.
func (repo *productRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := repo.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product")
	}
	if res.DeletedCount == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) (*entity.Product, error) {
	price, err := decimal.NewFromString(data.Price.String())
	if err != nil {
		return nil, errors.Wrapf(err, "product %s has an unreadable price", data.ID.Hex())
	}

	return &entity.Product{
		ID:       data.ID.Hex(),
		Name:     data.Name,
		Price:    price,
		Category: data.Category,
		Quantity: data.Quantity,
	}, nil
}

func fromProductDomain(data *entity.Product) (*model.ProductModel, error) {
	price, err := toDecimal128(data.Price)
	if err != nil {
		return nil, err
	}

	return &model.ProductModel{
		Name:     data.Name,
		Price:    price,
		Category: data.Category,
		Quantity: data.Quantity,
	}, nil
}

func toDecimal128(d decimal.Decimal) (primitive.Decimal128, error) {
	price, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.Decimal128{}, errors.Wrapf(err, "price %s is not representable", d.String())
	}

	return price, nil
}
