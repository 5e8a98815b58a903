package account

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const usersCollection = "users"

// Repository persists accounts.
type Repository interface {
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByID(ctx context.Context, id string) (User, error)
	Insert(ctx context.Context, user User) (bson.ObjectID, error)
	Replace(ctx context.Context, user User) (User, error)
}

// MongoRepository implements Repository against the "users" collection.
type MongoRepository struct {
	coll *mongo.Collection
}

// NewMongoRepository builds a Mongo-backed account repository.
func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: db.Collection(usersCollection)}
}

// FindByEmail fetches the account whose email matches exactly.
func (r *MongoRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	var user User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("find account by email: %w", err)
	}
	return user, nil
}

// FindByID fetches an account by the hex form of its store-assigned id.
func (r *MongoRepository) FindByID(ctx context.Context, id string) (User, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return User{}, ErrNotFound
	}

	var user User
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("find account by id: %w", err)
	}
	return user, nil
}

// Insert stores a new account document and returns the assigned id.
func (r *MongoRepository) Insert(ctx context.Context, user User) (bson.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		return bson.ObjectID{}, fmt.Errorf("insert account: %w", err)
	}

	id, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return bson.ObjectID{}, fmt.Errorf("insert account: unexpected id type %T", res.InsertedID)
	}
	return id, nil
}

// Replace persists the entire merged record keyed by email and returns the
// document as stored after the write. It never upserts: a missing account is
// reported as ErrNotFound.
func (r *MongoRepository) Replace(ctx context.Context, user User) (User, error) {
	update := bson.M{"$set": bson.M{
		"firstName": user.FirstName,
		"lastName":  user.LastName,
		"password":  user.PasswordHash,
		"createdAt": user.CreatedAt,
		"updatedAt": user.UpdatedAt,
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var merged User
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"email": user.Email}, update, opts).Decode(&merged)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("replace account: %w", err)
	}
	return merged, nil
}
