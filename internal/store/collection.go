package store

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"pergunu/internal/metrics"
)

// Collection gives backend-agnostic read/replace access to one named
// collection. Reads and writes prefer the document database and fall back to
// the flat file on any error; callers never see which backend served them.
//
// Every mutation transfers the entire collection (delete-all then bulk
// insert). Two concurrent writers racing on the same collection can lose
// updates; acceptable at the data volumes this portal targets.
type Collection[T any] struct {
	name string
	db   *Mongo
	file *FileStore
	get  func(*Document) []T
	set  func(*Document, []T)
}

// NewCollection binds a collection name to its typed slice in the flat-file
// document.
func NewCollection[T any](name string, db *Mongo, file *FileStore, get func(*Document) []T, set func(*Document, []T)) *Collection[T] {
	return &Collection[T]{name: name, db: db, file: file, get: get, set: set}
}

// Name returns the collection name shared by both backends.
func (c *Collection[T]) Name() string { return c.name }

// All returns every record in the collection.
func (c *Collection[T]) All(ctx context.Context) ([]T, error) {
	if db := c.db.Database(); db != nil {
		items, err := c.fetch(ctx, db)
		if err == nil {
			return items, nil
		}
		log.Printf("mongodb read error on %s, falling back to file: %v", c.name, err)
		metrics.FallbackReads.WithLabelValues(c.name).Inc()
	}
	doc := c.file.Read()
	items := c.get(&doc)
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Replace overwrites the entire collection with items.
func (c *Collection[T]) Replace(ctx context.Context, items []T) error {
	if db := c.db.Database(); db != nil {
		err := c.replace(ctx, db, items)
		if err == nil {
			return nil
		}
		log.Printf("mongodb write error on %s, falling back to file: %v", c.name, err)
		metrics.FallbackWrites.WithLabelValues(c.name).Inc()
	}
	doc := c.file.Read()
	c.set(&doc, items)
	return c.file.Write(doc)
}

func (c *Collection[T]) fetch(ctx context.Context, db *mongo.Database) ([]T, error) {
	cur, err := db.Collection(c.name).Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	items := []T{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Collection[T]) replace(ctx context.Context, db *mongo.Database, items []T) error {
	coll := db.Collection(c.name)
	if _, err := coll.DeleteMany(ctx, bson.D{}); err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	docs := make([]interface{}, len(items))
	for i, item := range items {
		docs[i] = item
	}
	_, err := coll.InsertMany(ctx, docs)
	return err
}
