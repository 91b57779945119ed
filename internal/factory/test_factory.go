package factory

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mcoot/gobang/internal/storage/memory"
	"github.com/mcoot/gobang/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Memory is the concrete store, for inspecting state in tests
	Memory *memory.Storage
}

// NewTestApp creates an App backed by in-memory storage and a private metrics registry
func NewTestApp() *TestApp {
	store := memory.New()
	app := newWithDependencies(store, prometheus.NewRegistry(), testutil.NopLogger())

	return &TestApp{
		App:    app,
		Memory: store,
	}
}
