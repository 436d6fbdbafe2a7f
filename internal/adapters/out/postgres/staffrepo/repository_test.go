package staffrepo_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"atelier/internal/adapters/out/postgres"
	"atelier/internal/adapters/out/postgres/staffrepo"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/staff"
	"atelier/internal/core/domain/model/task"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedYAML = `
staff:
  - id: 5b8a6c1e-0d7e-4a43-9a36-1f0e2d3c4b5a
    name: Ravi
    role: Cutter
    certified: true
    experience: 7
  - id: 0f4f3a52-8d3b-4f4e-b4a4-6a3a0c1d2e3f
    name: Anil
    role: cutter
    experience: 2
    active: false
  - id: 9c1d2e3f-4a5b-4c6d-8e7f-0a1b2c3d4e5f
    name: Meena
    role: Tailor
    experience: 12
`

func newDirectory(t *testing.T) *staffrepo.GormStaffDirectory {
	t.Helper()
	db, err := postgres.Open(postgres.Settings{Driver: postgres.DriverSQLite, SQLitePath: ":memory:"}, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))
	return staffrepo.NewGormStaffDirectory(db)
}

func TestParseSeed(t *testing.T) {
	members, err := staffrepo.ParseSeed([]byte(seedYAML))
	require.NoError(t, err)
	require.Len(t, members, 3)

	assert.Equal(t, "Ravi", members[0].Name())
	assert.True(t, members[0].IsCertified())
	assert.True(t, members[0].IsActive())
	assert.Equal(t, staff.Cutter, members[1].Role())
	assert.False(t, members[1].IsActive())

	t.Run("rejects bad entries", func(t *testing.T) {
		_, err := staffrepo.ParseSeed([]byte("staff:\n  - id: nope\n    name: X\n    role: Cutter\n"))
		require.Error(t, err)

		_, err = staffrepo.ParseSeed([]byte("staff:\n  - id: 5b8a6c1e-0d7e-4a43-9a36-1f0e2d3c4b5a\n    name: X\n    role: Driver\n"))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestGormStaffDirectory(t *testing.T) {
	ctx := context.Background()
	dir := newDirectory(t)

	path := filepath.Join(t.TempDir(), "staff.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedYAML), 0o600))

	n, err := dir.SeedFromFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = dir.SeedFromFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	cutters, err := dir.ListByRole(ctx, staff.Cutter)
	require.NoError(t, err)
	require.Len(t, cutters, 2)
	assert.Equal(t, "Anil", cutters[0].Name())
	assert.False(t, cutters[0].IsActive())
	assert.Equal(t, "Ravi", cutters[1].Name())
	assert.True(t, cutters[1].IsActive())

	meena, err := dir.Get(ctx, kernel.MustUUID("9c1d2e3f-4a5b-4c6d-8e7f-0a1b2c3d4e5f"))
	require.NoError(t, err)
	assert.Equal(t, staff.Tailor, meena.Role())
	assert.Equal(t, 12, meena.Experience())

	_, err = dir.Get(ctx, kernel.NewUUID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	_, err = dir.SeedFromFile(ctx, filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestGormStaffDirectory_PersistsInactiveFlag(t *testing.T) {
	ctx := context.Background()
	dir := newDirectory(t)

	member, err := staff.NewStaff(kernel.NewUUID(), "Farid", staff.Cutter, true, 9, false)
	require.NoError(t, err)
	require.NoError(t, dir.Save(ctx, member))

	loaded, err := dir.Get(ctx, member.ID())
	require.NoError(t, err)
	assert.False(t, loaded.IsActive())
	require.Error(t, loaded.CheckAssignable(task.Cutting, false))

	reactivated, err := staff.NewStaff(member.ID(), "Farid", staff.Cutter, true, 9, true)
	require.NoError(t, err)
	require.NoError(t, dir.Save(ctx, reactivated))

	loaded, err = dir.Get(ctx, member.ID())
	require.NoError(t, err)
	assert.True(t, loaded.IsActive())
	require.NoError(t, loaded.CheckAssignable(task.Cutting, false))
}
