// internal/app/store/catalog/catalogstore.go
package catalogstore

import (
	"context"
	"errors"

	"github.com/dalemusser/coursecompare/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a program or institution ID is unknown.
var ErrNotFound = errors.New("catalog: not found")

// Store reads and writes the program and institution catalogs.
type Store struct {
	programs     *mongo.Collection
	institutions *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{
		programs:     db.Collection("programs"),
		institutions: db.Collection("institutions"),
	}
}

// Snapshot is the full catalog in a stable order, ready to hand to the
// ranking engine.
type Snapshot struct {
	Programs     []models.Program
	Institutions []models.Institution
}

// Institution returns the institution with the given ID from the snapshot,
// or nil.
func (s Snapshot) Institution(id string) *models.Institution {
	for i := range s.Institutions {
		if s.Institutions[i].ID == id {
			return &s.Institutions[i]
		}
	}
	return nil
}

// UpsertProgram inserts or replaces a program by ID.
func (s *Store) UpsertProgram(ctx context.Context, p models.Program) error {
	p.NameCI = text.Fold(p.Name)
	_, err := s.programs.ReplaceOne(ctx, bson.M{"_id": p.ID}, p, options.Replace().SetUpsert(true))
	return err
}

// UpsertInstitution inserts or replaces an institution by ID.
func (s *Store) UpsertInstitution(ctx context.Context, inst models.Institution) error {
	inst.NameCI = text.Fold(inst.Name)
	_, err := s.institutions.ReplaceOne(ctx, bson.M{"_id": inst.ID}, inst, options.Replace().SetUpsert(true))
	return err
}

func (s *Store) GetProgram(ctx context.Context, id string) (models.Program, error) {
	var p models.Program
	if err := s.programs.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Program{}, ErrNotFound
		}
		return models.Program{}, err
	}
	return p, nil
}

func (s *Store) GetInstitution(ctx context.Context, id string) (models.Institution, error) {
	var inst models.Institution
	if err := s.institutions.FindOne(ctx, bson.M{"_id": id}).Decode(&inst); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Institution{}, ErrNotFound
		}
		return models.Institution{}, err
	}
	return inst, nil
}

// Programs returns every program ordered by institution, folded name, then ID.
func (s *Store) Programs(ctx context.Context) ([]models.Program, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "institution_id", Value: 1},
		{Key: "name_ci", Value: 1},
		{Key: "_id", Value: 1},
	})
	cur, err := s.programs.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Program
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Institutions returns every institution ordered by folded name, then ID.
func (s *Store) Institutions(ctx context.Context) ([]models.Institution, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := s.institutions.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Institution
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Snapshot loads both catalogs.
func (s *Store) Snapshot(ctx context.Context) (Snapshot, error) {
	programs, err := s.Programs(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	institutions, err := s.Institutions(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Programs: programs, Institutions: institutions}, nil
}

// CountPrograms returns the number of stored programs.
func (s *Store) CountPrograms(ctx context.Context) (int64, error) {
	return s.programs.CountDocuments(ctx, bson.M{})
}
