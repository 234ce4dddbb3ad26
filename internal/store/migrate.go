package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrMongoUnavailable is returned when a migration is requested without a
// reachable document database.
var ErrMongoUnavailable = errors.New("mongodb not connected")

// Migrate copies the flat-file snapshot into the document database: for each
// non-empty collection, delete-all then bulk-insert. One-shot and not safe
// against concurrent writers; run it in a maintenance window. Returns
// per-collection migrated counts.
func Migrate(ctx context.Context, file *FileStore, db *Mongo) (map[string]int, error) {
	handle := db.Database()
	if handle == nil {
		if err := db.Connect(ctx); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMongoUnavailable, err)
		}
		if handle = db.Database(); handle == nil {
			return nil, ErrMongoUnavailable
		}
	}

	doc := file.Read()
	results := map[string]int{}

	if err := migrateSlice(ctx, handle, ColUsers, doc.Users, results); err != nil {
		return results, err
	}
	if err := migrateSlice(ctx, handle, ColNews, doc.News, results); err != nil {
		return results, err
	}
	if err := migrateSlice(ctx, handle, ColBeasiswa, doc.Beasiswa, results); err != nil {
		return results, err
	}
	if err := migrateSlice(ctx, handle, ColApplications, doc.Applications, results); err != nil {
		return results, err
	}
	if err := migrateSlice(ctx, handle, ColBeasiswaApplications, doc.BeasiswaApplications, results); err != nil {
		return results, err
	}
	if err := migrateSlice(ctx, handle, ColSessions, doc.Sessions, results); err != nil {
		return results, err
	}
	return results, nil
}

func migrateSlice[T any](ctx context.Context, db *mongo.Database, name string, items []T, results map[string]int) error {
	if len(items) == 0 {
		return nil
	}
	coll := db.Collection(name)
	if _, err := coll.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	docs := make([]interface{}, len(items))
	for i, item := range items {
		docs[i] = item
	}
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	results[name] = len(items)
	return nil
}
