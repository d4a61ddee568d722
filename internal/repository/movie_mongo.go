package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/iliyamo/movie-query-api/internal/model"
)

// MongoMovieRepo implements MovieStore over a MongoDB collection whose
// documents use the same field names as the MySQL columns.
type MongoMovieRepo struct {
	coll *mongo.Collection
}

var _ MovieStore = (*MongoMovieRepo)(nil)

// NewMongoMovieRepo wraps an already configured collection handle.
func NewMongoMovieRepo(coll *mongo.Collection) *MongoMovieRepo {
	return &MongoMovieRepo{coll: coll}
}

// FindAll runs a find with the filter and pagination modifiers applied.
// Server errors (e.g. mongo.CommandError) are returned unwrapped.
func (r *MongoMovieRepo) FindAll(ctx context.Context, f MovieFilter, opts FindOptions) ([]model.Movie, error) {
	if opts.Skip < 0 {
		return nil, ErrNegativeSkip
	}
	fo := options.Find()
	if opts.Skip > 0 {
		fo.SetSkip(opts.Skip)
	}
	if opts.Limit > 0 {
		fo.SetLimit(opts.Limit)
	}

	cur, err := r.coll.Find(ctx, mongoFilter(f), fo)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]model.Movie, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.Movie{}
	}
	return out, nil
}

// FindOne decodes the first matching document or returns ErrMovieNotFound.
func (r *MongoMovieRepo) FindOne(ctx context.Context, f MovieFilter) (*model.Movie, error) {
	var m model.Movie
	if err := r.coll.FindOne(ctx, mongoFilter(f)).Decode(&m); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return &m, nil
}

func mongoFilter(f MovieFilter) bson.D {
	d := bson.D{}
	if f.ShowID != nil {
		d = append(d, bson.E{Key: "show_id", Value: *f.ShowID})
	}
	if f.Type != nil {
		d = append(d, bson.E{Key: "type", Value: *f.Type})
	}
	if f.ReleaseYear != nil {
		d = append(d, bson.E{Key: "release_year", Value: *f.ReleaseYear})
	}
	if f.Rating != nil {
		d = append(d, bson.E{Key: "rating", Value: *f.Rating})
	}
	return d
}
