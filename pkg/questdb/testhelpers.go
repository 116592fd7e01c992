package questdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestHelper provides common testing utilities
type TestHelper struct {
	Container *TestContainer
	T         *testing.T
}

// NewTestHelperWithMigrations starts QuestDB and applies the migrations of
// migrationsPath. The container is terminated when the test ends.
func NewTestHelperWithMigrations(t *testing.T, migrationsPath string) *TestHelper {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	config := DefaultTestContainerConfig()
	config.MigrationsPath = migrationsPath

	container, err := NewTestContainer(context.Background(), config)
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := container.Close(); err != nil {
			t.Logf("Failed to close test container: %v", err)
		}
	})

	return &TestHelper{
		Container: container,
		T:         t,
	}
}

// GetClient returns the QuestDB client
func (h *TestHelper) GetClient() QuestDBClient {
	return h.Container.Client
}
