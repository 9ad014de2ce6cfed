// Package model holds the bson document shapes stored in MongoDB.
package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// ProductModel mirrors a document of the products collection.
type ProductModel struct {
	ID       primitive.ObjectID   `bson:"_id"`
	Name     string               `bson:"name"`
	Price    primitive.Decimal128 `bson:"price"`
	Category string               `bson:"category"`
	Quantity int                  `bson:"quantity"`
}
