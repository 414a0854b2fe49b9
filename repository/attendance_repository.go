package repository

import (
	"context"
	"errors"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"InOut-Attendance-Backend/config"
	"InOut-Attendance-Backend/models"
	"InOut-Attendance-Backend/pkg/attendance"
)

// AttendanceRepository is the record-keyed persistence boundary of the
// attendance core. Check-in is a full-document replace; transit, checkout
// and the leave annotations are partial patches against the same key.
type AttendanceRepository interface {
	FindByRecordID(ctx context.Context, recordID string) (*models.AttendanceRecord, error)
	ReplaceRecord(ctx context.Context, record *models.AttendanceRecord) error
	PatchRecord(ctx context.Context, recordID string, fields bson.M) (*mongo.UpdateResult, error)
	ApplyTransit(ctx context.Context, recordID string, patch attendance.TransitPatch) (*mongo.UpdateResult, error)
	FindByEmployeeMonth(ctx context.Context, employeeID string, year int, month int) (map[string]models.AttendanceRecord, error)
	FindByEmployeeID(ctx context.Context, employeeID string) ([]models.AttendanceRecord, error)
	WatchRecord(ctx context.Context, recordID string) (<-chan models.AttendanceRecord, error)
}

type attendanceRepository struct {
	collection *mongo.Collection
}

func NewAttendanceRepository() AttendanceRepository {
	return &attendanceRepository{
		collection: config.GetCollection(config.AttendanceCollection),
	}
}

func (r *attendanceRepository) FindByRecordID(ctx context.Context, recordID string) (*models.AttendanceRecord, error) {
	var record models.AttendanceRecord

	err := r.collection.FindOne(ctx, bson.M{"_id": recordID}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find attendance record: %w", err)
	}
	return &record, nil
}

// ReplaceRecord writes the full document, creating it when absent. The
// composite _id makes an employee-day unique by construction, so a
// replace of an existing day is a deliberate overwrite (resume cycle).
func (r *attendanceRepository) ReplaceRecord(ctx context.Context, record *models.AttendanceRecord) error {
	opts := options.Replace().SetUpsert(true)

	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": record.RecordID}, record, opts)
	if err != nil {
		return fmt.Errorf("failed to write attendance record: %w", err)
	}
	return nil
}

func (r *attendanceRepository) PatchRecord(ctx context.Context, recordID string, fields bson.M) (*mongo.UpdateResult, error) {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": recordID}, bson.M{"$set": fields})
	if err != nil {
		return nil, fmt.Errorf("failed to patch attendance record: %w", err)
	}
	return result, nil
}

// ApplyTransit combines the field patch with the movement-log append.
// $addToSet mirrors the original store's array-union semantics.
func (r *attendanceRepository) ApplyTransit(ctx context.Context, recordID string, patch attendance.TransitPatch) (*mongo.UpdateResult, error) {
	update := bson.M{
		"$set": bson.M{
			"distanceMeters":         patch.DistanceMeters,
			"locationName":           patch.LocationName,
			"lastVerifiedLocationId": patch.LastVerifiedLocationID,
		},
		"$addToSet": bson.M{"movementLog": patch.MovementEntry},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": recordID}, update)
	if err != nil {
		return nil, fmt.Errorf("failed to apply transit: %w", err)
	}
	return result, nil
}

// FindByEmployeeMonth returns the sparse month keyed by dateId, ready for
// the report projection.
func (r *attendanceRepository) FindByEmployeeMonth(ctx context.Context, employeeID string, year int, month int) (map[string]models.AttendanceRecord, error) {
	prefix := fmt.Sprintf("%04d-%02d", year, month)
	filter := bson.M{
		"employeeId": employeeID,
		"date":       bson.M{"$regex": "^" + prefix},
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query month records: %w", err)
	}
	defer cursor.Close(ctx)

	records := make(map[string]models.AttendanceRecord)
	for cursor.Next(ctx) {
		var rec models.AttendanceRecord
		if err := cursor.Decode(&rec); err != nil {
			return nil, fmt.Errorf("failed to decode attendance record: %w", err)
		}
		records[rec.Date] = rec
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("month record cursor failed: %w", err)
	}
	return records, nil
}

func (r *attendanceRepository) FindByEmployeeID(ctx context.Context, employeeID string) ([]models.AttendanceRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"employeeId": employeeID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance history: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.AttendanceRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode attendance history: %w", err)
	}
	return records, nil
}

// WatchRecord streams snapshots of one employee-day so clients can
// re-derive state and button eligibility on every observed change. The
// channel closes when the context is done or the stream breaks; callers
// re-subscribe, nothing is retried here.
func (r *attendanceRepository) WatchRecord(ctx context.Context, recordID string) (<-chan models.AttendanceRecord, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"documentKey._id": recordID}}},
	}
	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)

	stream, err := r.collection.Watch(ctx, pipeline, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open change stream: %w", err)
	}

	snapshots := make(chan models.AttendanceRecord)
	go func() {
		defer close(snapshots)
		defer stream.Close(ctx)

		for stream.Next(ctx) {
			var event struct {
				FullDocument models.AttendanceRecord `bson:"fullDocument"`
			}
			if err := stream.Decode(&event); err != nil {
				log.Printf("failed to decode change event for %s: %v", recordID, err)
				continue
			}
			select {
			case snapshots <- event.FullDocument:
			case <-ctx.Done():
				return
			}
		}
	}()

	return snapshots, nil
}
