package lookup

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupHallService(t *testing.T) *Service {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(Models()...))

	return NewService(NewRepository(db), nil, TableHalls, "hall")
}

func TestCreateAndGet(t *testing.T) {
	svc := setupHallService(t)

	item, err := svc.Create("Unity Hall", nil, "127.0.0.1")
	require.NoError(t, err)
	assert.NotZero(t, item.ID)
	assert.Equal(t, "Unity Hall", item.Name)

	got, err := svc.GetByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, got.ID)
	assert.Equal(t, "Unity Hall", got.Name)
}

func TestCreateDuplicateName(t *testing.T) {
	svc := setupHallService(t)

	_, err := svc.Create("Unity Hall", nil, "")
	require.NoError(t, err)

	_, err = svc.Create("Unity Hall", nil, "")
	assert.True(t, errors.Is(err, ErrNameTaken))
}

// duplicateKeyRepo reports the name as free but fails the write with a
// unique violation, the shape a concurrent insert leaves behind.
type duplicateKeyRepo struct{}

func (duplicateKeyRepo) Create(table string, item *Item) error { return gorm.ErrDuplicatedKey }
func (duplicateKeyRepo) List(table string, offset, limit int) ([]Item, error) {
	return nil, nil
}
func (duplicateKeyRepo) GetByID(table string, id uint) (*Item, error) {
	return &Item{ID: id, Name: "Unity Hall"}, nil
}
func (duplicateKeyRepo) FindByName(table, name string) (*Item, error) {
	return nil, gorm.ErrRecordNotFound
}
func (duplicateKeyRepo) UpdateName(table string, id uint, name string) error {
	return gorm.ErrDuplicatedKey
}
func (duplicateKeyRepo) Delete(table string, id uint) error { return nil }

func TestCreateDuplicateKeyBackstop(t *testing.T) {
	svc := NewService(duplicateKeyRepo{}, nil, TableHalls, "hall")

	_, err := svc.Create("Unity Hall", nil, "")
	assert.True(t, errors.Is(err, ErrNameTaken))
}

func TestUpdateDuplicateKeyBackstop(t *testing.T) {
	svc := NewService(duplicateKeyRepo{}, nil, TableHalls, "hall")

	name := "Commonwealth Hall"
	_, err := svc.Update(1, &name, nil, "")
	assert.True(t, errors.Is(err, ErrNameTaken))
}

func TestGetMissing(t *testing.T) {
	svc := setupHallService(t)

	_, err := svc.GetByID(42)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestUpdateRename(t *testing.T) {
	svc := setupHallService(t)

	item, err := svc.Create("Unity Hall", nil, "")
	require.NoError(t, err)

	newName := "Republic Hall"
	updated, err := svc.Update(item.ID, &newName, nil, "")
	require.NoError(t, err)
	assert.Equal(t, "Republic Hall", updated.Name)

	got, err := svc.GetByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Republic Hall", got.Name)
}

func TestUpdateWithoutNameIsNoop(t *testing.T) {
	svc := setupHallService(t)

	item, err := svc.Create("Unity Hall", nil, "")
	require.NoError(t, err)

	updated, err := svc.Update(item.ID, nil, nil, "")
	require.NoError(t, err)
	assert.Equal(t, "Unity Hall", updated.Name)
}

func TestUpdateNameCollision(t *testing.T) {
	svc := setupHallService(t)

	_, err := svc.Create("Unity Hall", nil, "")
	require.NoError(t, err)
	second, err := svc.Create("Republic Hall", nil, "")
	require.NoError(t, err)

	taken := "Unity Hall"
	_, err = svc.Update(second.ID, &taken, nil, "")
	assert.True(t, errors.Is(err, ErrNameTaken))
}

func TestUpdateToSameNameKeepsRow(t *testing.T) {
	svc := setupHallService(t)

	item, err := svc.Create("Unity Hall", nil, "")
	require.NoError(t, err)

	same := "Unity Hall"
	updated, err := svc.Update(item.ID, &same, nil, "")
	require.NoError(t, err)
	assert.Equal(t, "Unity Hall", updated.Name)
}

func TestDelete(t *testing.T) {
	svc := setupHallService(t)

	item, err := svc.Create("Unity Hall", nil, "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(item.ID, nil, ""))

	_, err = svc.GetByID(item.ID)
	assert.True(t, errors.Is(err, ErrNotFound))

	assert.True(t, errors.Is(svc.Delete(item.ID, nil, ""), ErrNotFound))
}

func TestListPagination(t *testing.T) {
	svc := setupHallService(t)

	names := []string{"Unity", "Republic", "University", "Independence", "Africa"}
	for _, n := range names {
		_, err := svc.Create(n, nil, "")
		require.NoError(t, err)
	}

	page, err := svc.List(2, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "University", page[0].Name)
	assert.Equal(t, "Independence", page[1].Name)

	all, err := svc.List(0, 100)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestTablesAreIndependent(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(Models()...))

	repo := NewRepository(db)
	halls := NewService(repo, nil, TableHalls, "hall")
	levels := NewService(repo, nil, TableLevels, "level")

	_, err = halls.Create("Unity Hall", nil, "")
	require.NoError(t, err)

	// same name in a different table is not a conflict
	_, err = levels.Create("Unity Hall", nil, "")
	require.NoError(t, err)

	items, err := levels.List(0, 100)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}
