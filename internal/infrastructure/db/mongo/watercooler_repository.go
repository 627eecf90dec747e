package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hosteldesk/hostel-portal/internal/core/domain"
)

const collectionWaterCoolers = "watercoolers"

type WaterCoolerRepository struct {
	col *mongo.Collection
}

func NewWaterCoolerRepository(db *mongo.Database) *WaterCoolerRepository {
	return &WaterCoolerRepository{col: db.Collection(collectionWaterCoolers)}
}

type coolerDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	TDS         string             `bson:"tds"`
	LastUpdated time.Time          `bson:"lastUpdated"`
}

func (d coolerDoc) toDomain() *domain.WaterCooler {
	return &domain.WaterCooler{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		TDS:         d.TDS,
		LastUpdated: d.LastUpdated,
	}
}

// FindAll returns every cooler record, alphabetical by name.
func (r *WaterCoolerRepository) FindAll(ctx context.Context) ([]*domain.WaterCooler, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	coolers := []*domain.WaterCooler{}
	for cur.Next(ctx) {
		var doc coolerDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		coolers = append(coolers, doc.toDomain())
	}
	return coolers, cur.Err()
}

// Upsert updates the record for name or creates it when absent, in a single
// FindOneAndUpdate round-trip. Combined with the unique index on name this
// keeps the uniqueness invariant under concurrent writes; a separate
// read-then-write would race.
//
// When two first-writes for the same name race, the loser's insert attempt
// hits the unique index with a duplicate-key error even though the record now
// exists. One retry turns that into a plain update.
func (r *WaterCoolerRepository) Upsert(ctx context.Context, name, tds string) (*domain.WaterCooler, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc coolerDoc
	var err error
	for attempt := 0; attempt < 2; attempt++ {
		err = r.col.FindOneAndUpdate(ctx,
			bson.M{"name": name},
			bson.M{"$set": bson.M{"tds": tds, "lastUpdated": time.Now().UTC()}},
			opts,
		).Decode(&doc)
		if err == nil {
			return doc.toDomain(), nil
		}
		if !lostUpsertRace(err) {
			break
		}
	}
	return nil, err
}

// lostUpsertRace reports whether err is the duplicate-key error a concurrent
// first-write leaves for the losing upsert.
func lostUpsertRace(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

// EnsureIndexes creates the unique index backing the name invariant.
func (r *WaterCoolerRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
