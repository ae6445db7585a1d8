package service

import (
	"context"
	"sync"
	"testing"

	"medinfo-be/internal/pkg/logger"
	"medinfo-be/internal/repository/memory"
	"medinfo-be/internal/repository/unitofwork"
	"medinfo-be/pkg/database"
	"medinfo-be/pkg/events"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testDeps struct {
	db         *gorm.DB
	uowFactory unitofwork.RepositoryFactory
	cache      *memory.ResultCache
	log        logger.ILogger
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()

	db, err := database.NewInMemoryDB()
	require.NoError(t, err)
	require.NoError(t, database.Seed(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return &testDeps{
		db:         db,
		uowFactory: unitofwork.NewRepositoryFactory(db),
		cache:      memory.NewResultCache(),
		log:        logger.NewNopLogger(),
	}
}

// recordingPublisher hands every published event to a buffered channel.
type recordingPublisher struct {
	events chan events.Event
}

func newRecordingPublisher() *recordingPublisher {
	return &recordingPublisher{events: make(chan events.Event, 16)}
}

func (p *recordingPublisher) Publish(ctx context.Context, event events.Event) error {
	p.events <- event
	return nil
}

type logEntry struct {
	level   string
	message string
	details map[string]interface{}
}

// recordingLogger keeps every entry in memory.
type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *recordingLogger) add(level, message string, details map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{level: level, message: message, details: details})
}

func (l *recordingLogger) Debug(module, message string, details map[string]interface{}) {
	l.add("debug", message, details)
}

func (l *recordingLogger) Info(module, message string, details map[string]interface{}) {
	l.add("info", message, details)
}

func (l *recordingLogger) Warn(module, message string, details map[string]interface{}) {
	l.add("warn", message, details)
}

func (l *recordingLogger) Error(module, message string, details map[string]interface{}) {
	l.add("error", message, details)
}

func (l *recordingLogger) Sync() error { return nil }

func (l *recordingLogger) snapshot() []logEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]logEntry(nil), l.entries...)
}
