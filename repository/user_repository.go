package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"InOut-Attendance-Backend/config"
	"InOut-Attendance-Backend/models"
)

type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		collection: config.GetCollection(config.UserCollection),
	}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("email is already registered")
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	filter := bson.M{"email": email}

	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) FindUserByID(ctx context.Context, uid string) (*models.User, error) {
	var user models.User
	filter := bson.M{"_id": uid}

	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) FindUserByEmployeeID(ctx context.Context, employeeID string) (*models.User, error) {
	var user models.User

	err := r.collection.FindOne(ctx, bson.M{"employeeId": employeeID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by employee ID: %w", err)
	}
	return &user, nil
}

// UpdateUser applies a partial $set patch to one profile.
func (r *UserRepository) UpdateUser(ctx context.Context, uid string, updateData bson.M) (*mongo.UpdateResult, error) {
	updateData["updated_at"] = time.Now()
	filter := bson.M{"_id": uid}
	update := bson.M{"$set": updateData}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return result, nil
}

// BulkAssign re-points a set of employees at one location in a single
// update; they must re-verify through a Transit action mid-shift.
func (r *UserRepository) BulkAssign(ctx context.Context, uids []string, updateData bson.M) (*mongo.UpdateResult, error) {
	updateData["updated_at"] = time.Now()
	filter := bson.M{"_id": bson.M{"$in": uids}}
	update := bson.M{"$set": updateData}

	result, err := r.collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("failed to bulk assign users: %w", err)
	}
	return result, nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, uid string) (*mongo.DeleteResult, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": uid})
	if err != nil {
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}
	return result, nil
}

// FindEmployees lists employee profiles; pass approvedOnly to restrict to
// accounts the admin has already activated.
func (r *UserRepository) FindEmployees(ctx context.Context, approvedOnly bool) ([]models.User, error) {
	filter := bson.M{"role": "employee"}
	if approvedOnly {
		filter["approved"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode employees: %w", err)
	}
	return users, nil
}

// FindPendingLeaveRequests lists employees whose emergency or medical
// leave status is waiting on admin review.
func (r *UserRepository) FindPendingLeaveRequests(ctx context.Context) ([]models.User, error) {
	filter := bson.M{
		"role": "employee",
		"$or": []bson.M{
			{"emergencyLeaveStatus": models.LeaveStatusPending},
			{"medicalLeaveStatus": models.LeaveStatusPending},
		},
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending leave requests: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode pending leave requests: %w", err)
	}
	return users, nil
}
