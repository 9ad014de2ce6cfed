package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserModel mirrors a document of the users collection. Email carries a unique index.
type UserModel struct {
	ID           primitive.ObjectID   `bson:"_id"`
	LastName     string               `bson:"lastName"`
	FirstName    string               `bson:"firstName"`
	Phone        string               `bson:"phone"`
	Email        string               `bson:"email"`
	PasswordHash string               `bson:"passwordHash"`
	Cart         []primitive.ObjectID `bson:"cart"`
	CreatedAt    time.Time            `bson:"createdAt"`
	UpdatedAt    time.Time            `bson:"updatedAt"`
}
