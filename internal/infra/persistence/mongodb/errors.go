package mongodb

import (
	"shop/internal/domain/repository"
	"shop/internal/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func isUniqueConstraintViolation(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

func isNotFound(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

// parseID converts an opaque identifier into an ObjectID.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, errors.Wrapf(repository.ErrInvalidID, "%q", id)
	}

	return oid, nil
}
