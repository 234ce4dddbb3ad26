package store

import (
	"context"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Mongo manages a lazy, memoized connection to the document database. An
// empty URI is a supported standing mode (flat-file only), not an error.
type Mongo struct {
	uri    string
	dbName string

	mu     sync.Mutex
	client *mongo.Client
	db     *mongo.Database
}

// NewMongo creates a disconnected manager. Call Connect once at startup;
// request handlers only ever consult Database.
func NewMongo(uri, dbName string) *Mongo {
	return &Mongo{uri: uri, dbName: dbName}
}

// Connect dials the configured database and caches the handle for the
// process lifetime. It no-ops when already connected and when no URI is
// configured.
func (m *Mongo) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db != nil || m.uri == "" {
		return nil
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(m.uri))
	if err != nil {
		return err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return err
	}

	m.client = client
	m.db = client.Database(m.dbName)
	log.Printf("mongodb connected to database %s", m.dbName)
	return nil
}

// Database returns the cached handle or nil. It never attempts a connection.
func (m *Mongo) Database() *mongo.Database {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.db
}

// Configured reports whether a connection string is set, regardless of
// connection state.
func (m *Mongo) Configured() bool {
	return m.uri != ""
}

// Close releases the connection and clears the cache. Used by operator
// tooling only.
func (m *Mongo) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client == nil {
		return nil
	}
	err := m.client.Disconnect(ctx)
	m.client = nil
	m.db = nil
	return err
}
