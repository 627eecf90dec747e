package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hosteldesk/hostel-portal/internal/core/domain"
)

const collectionComplaints = "complaints"

type ComplaintRepository struct {
	col *mongo.Collection
}

func NewComplaintRepository(db *mongo.Database) *ComplaintRepository {
	return &ComplaintRepository{col: db.Collection(collectionComplaints)}
}

// complaintDoc is the persisted shape; _id stays an ObjectID in the store and
// is exposed as its hex form on the domain record.
type complaintDoc struct {
	ID           primitive.ObjectID     `bson:"_id,omitempty"`
	StudentName  string                 `bson:"studentName"`
	StudentEmail string                 `bson:"studentEmail"`
	RoomNumber   string                 `bson:"roomNumber"`
	Category     string                 `bson:"category"`
	Description  string                 `bson:"description"`
	Status       domain.ComplaintStatus `bson:"status"`
	CreatedAt    time.Time              `bson:"createdAt"`
}

func (d complaintDoc) toDomain() *domain.Complaint {
	return &domain.Complaint{
		ID:           d.ID.Hex(),
		StudentName:  d.StudentName,
		StudentEmail: d.StudentEmail,
		RoomNumber:   d.RoomNumber,
		Category:     d.Category,
		Description:  d.Description,
		Status:       d.Status,
		CreatedAt:    d.CreatedAt,
	}
}

// Create inserts a new complaint document and returns it with its id set.
func (r *ComplaintRepository) Create(ctx context.Context, c *domain.Complaint) (*domain.Complaint, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := complaintDoc{
		StudentName:  c.StudentName,
		StudentEmail: c.StudentEmail,
		RoomNumber:   c.RoomNumber,
		Category:     c.Category,
		Description:  c.Description,
		Status:       c.Status,
		CreatedAt:    c.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

// FindByStudentEmail returns one student's complaints, newest first.
func (r *ComplaintRepository) FindByStudentEmail(ctx context.Context, email string) ([]*domain.Complaint, error) {
	return r.find(ctx, bson.M{"studentEmail": email})
}

// FindAll returns every complaint, newest first.
func (r *ComplaintRepository) FindAll(ctx context.Context) ([]*domain.Complaint, error) {
	return r.find(ctx, bson.M{})
}

func (r *ComplaintRepository) find(ctx context.Context, filter bson.M) ([]*domain.Complaint, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	complaints := []*domain.Complaint{}
	for cur.Next(ctx) {
		var doc complaintDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		complaints = append(complaints, doc.toDomain())
	}
	return complaints, cur.Err()
}

// UpdateStatus sets the status of one complaint and returns the updated
// document. Only the status field is mutable through this repository.
func (r *ComplaintRepository) UpdateStatus(ctx context.Context, id string, status domain.ComplaintStatus) (*domain.Complaint, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrComplaintNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc complaintDoc
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": status}},
		opts,
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrComplaintNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// Delete removes one complaint by id.
func (r *ComplaintRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrComplaintNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrComplaintNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes the complaint queries rely on.
func (r *ComplaintRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "studentEmail", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
