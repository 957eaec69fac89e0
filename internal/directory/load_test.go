package directory

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/listbot/internal/common"
	"github.com/dmitrijs2005/listbot/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	details    []models.Details
	rows       []models.Row
	detailsErr error
	rowsErr    error
}

func (f *fakeSource) AllDetails(ctx context.Context) ([]models.Details, error) {
	return f.details, f.detailsErr
}

func (f *fakeSource) StreamRows(ctx context.Context, fn func(models.Row) error) error {
	if f.rowsErr != nil {
		return f.rowsErr
	}
	for _, r := range f.rows {
		if err := fn(r); err != nil {
			return err
		}
	}
	return nil
}

func row(owner int64, id string, rank int, element string) models.Row {
	return models.Row{Owner: owner, ListID: id, Rank: rank, Element: element}
}

func TestLoad_RestoresListsInRankOrder(t *testing.T) {
	d, p := newDirectory(t)
	src := &fakeSource{
		details: []models.Details{
			{Owner: 1, ListID: "bestgirl", Title: "Mine"},
			{Owner: 1, ListID: "anime", ThumbnailURL: "https://example.com/a.png"},
		},
		rows: []models.Row{
			row(1, "anime", 2, "C"),
			row(1, "anime", 0, "A"),
			row(1, "bestgirl", 0, "Ryuko"),
			row(1, "anime", 1, "B"),
		},
	}

	require.NoError(t, d.Load(context.Background(), src))

	anime, err := d.Get(1, "anime")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, anime.Contents())
	assert.Equal(t, "https://example.com/a.png", anime.Thumbnail())

	best, err := d.Get(1, "bestgirl")
	require.NoError(t, err)
	assert.True(t, best.Reserved())
	assert.Equal(t, "Mine", best.Title())
	assert.Equal(t, []string{"Ryuko"}, best.Contents())

	// loaded owners already have their reserved list
	require.NoError(t, d.EnsureOwner(context.Background(), 1))
	assert.Empty(t, p.created)
	assert.NoError(t, d.Disabled(1))
}

func TestLoad_HoleDisablesOnlyThatOwner(t *testing.T) {
	d, _ := newDirectory(t)
	src := &fakeSource{
		details: []models.Details{
			{Owner: 1, ListID: "anime"},
			{Owner: 2, ListID: "anime"},
		},
		rows: []models.Row{
			row(1, "anime", 0, "A"),
			row(1, "anime", 2, "C"),
			row(2, "anime", 0, "X"),
		},
	}

	err := d.Load(context.Background(), src)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrIncompleteLoad)

	assert.ErrorIs(t, d.Disabled(1), common.ErrOwnerDisabled)
	assert.ErrorIs(t, d.Disabled(1), common.ErrIncompleteLoad)
	assert.NoError(t, d.Disabled(2))

	l, err := d.Get(1, "anime")
	require.NoError(t, err)
	assert.Equal(t, 0, l.Len(), "a list with a hole is not partially loaded")
}

func TestLoad_DuplicateAndOrphanedRows(t *testing.T) {
	d, _ := newDirectory(t)
	src := &fakeSource{
		details: []models.Details{{Owner: 1, ListID: "anime"}},
		rows: []models.Row{
			row(1, "anime", 0, "A"),
			row(1, "anime", 0, "B"),
			row(3, "ghost", 0, "Boo"),
		},
	}

	err := d.Load(context.Background(), src)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrDuplicateSlot)
	assert.ErrorIs(t, err, common.ErrOrphanedListRow)

	assert.ErrorIs(t, d.Disabled(1), common.ErrDuplicateSlot)
	assert.ErrorIs(t, d.Disabled(3), common.ErrOrphanedListRow)
}

func TestLoad_ReadFailureKeepsState(t *testing.T) {
	d, _ := newDirectory(t)
	ctx := context.Background()
	_, err := d.Create(ctx, 1, "anime")
	require.NoError(t, err)

	err = d.Load(ctx, &fakeSource{detailsErr: errors.New("db down")})
	require.Error(t, err)
	_, err = d.Get(1, "anime")
	assert.NoError(t, err)

	err = d.Load(ctx, &fakeSource{rowsErr: errors.New("db down")})
	require.Error(t, err)
	_, err = d.Get(1, "anime")
	assert.NoError(t, err)
}
