package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/listbot/internal/common"
	"github.com/dmitrijs2005/listbot/internal/dbx"
	"github.com/dmitrijs2005/listbot/internal/models"
	"github.com/dmitrijs2005/listbot/internal/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var key = models.ListKey{Owner: 42, ListID: "anime"}

func newSQLiteStore(t *testing.T) (*Store, *sql.DB) {
	t.Helper()
	db, err := repomanager.Open(repomanager.DriverSQLite, filepath.Join(t.TempDir(), "lists.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	m := &repomanager.SQLiteRepositoryManager{}
	require.NoError(t, m.RunMigrations(context.Background(), db))
	return NewStore(db, m, dbx.PingOptions{Attempts: 1}), db
}

func load(t *testing.T, s *Store, k models.ListKey) []string {
	t.Helper()
	byRank := map[int]string{}
	require.NoError(t, s.StreamRows(context.Background(), func(r models.Row) error {
		if r.Key() == k {
			byRank[r.Rank] = r.Element
		}
		return nil
	}))
	out := make([]string, len(byRank))
	for rank, e := range byRank {
		require.Less(t, rank, len(out), "ranks must be contiguous")
		out[rank] = e
	}
	return out
}

func seed(t *testing.T, s *Store, elements ...string) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, s.CreateList(ctx, models.Details{Owner: key.Owner, ListID: key.ListID}))
	require.NoError(t, s.Append(ctx, key, 0, elements))
}

func TestInsert_ShiftsFollowingRanks(t *testing.T) {
	s, _ := newSQLiteStore(t)
	seed(t, s, "A", "B", "C")

	require.NoError(t, s.Insert(context.Background(), key, 0, "X"))
	assert.Equal(t, []string{"X", "A", "B", "C"}, load(t, s, key))

	require.NoError(t, s.Insert(context.Background(), key, 4, "Y"))
	assert.Equal(t, []string{"X", "A", "B", "C", "Y"}, load(t, s, key))
}

func TestRemove_HighestFirstInOneTransaction(t *testing.T) {
	s, _ := newSQLiteStore(t)
	seed(t, s, "A", "B", "C", "D", "E")

	require.NoError(t, s.Remove(context.Background(), key, []int{3, 1}))
	assert.Equal(t, []string{"A", "C", "E"}, load(t, s, key))
}

func TestRemove_FailureRollsBackEverything(t *testing.T) {
	s, _ := newSQLiteStore(t)
	seed(t, s, "A", "B", "C")

	err := s.Remove(context.Background(), key, []int{7, 0})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.Equal(t, []string{"A", "B", "C"}, load(t, s, key))
}

func TestMove(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []string
	}{
		{"down", 0, 3, []string{"B", "C", "D", "A", "E"}},
		{"up", 4, 1, []string{"A", "E", "B", "C", "D"}},
		{"adjacent", 1, 2, []string{"A", "C", "B", "D", "E"}},
		{"same", 2, 2, []string{"A", "B", "C", "D", "E"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newSQLiteStore(t)
			seed(t, s, "A", "B", "C", "D", "E")
			element := []string{"A", "B", "C", "D", "E"}[tt.from]

			require.NoError(t, s.Move(context.Background(), key, tt.from, tt.to, element))
			assert.Equal(t, tt.want, load(t, s, key))
		})
	}
}

func TestSwap(t *testing.T) {
	s, _ := newSQLiteStore(t)
	seed(t, s, "A", "B", "C")

	require.NoError(t, s.Swap(context.Background(), key, 0, 2))
	assert.Equal(t, []string{"C", "B", "A"}, load(t, s, key))

	require.NoError(t, s.Swap(context.Background(), key, 1, 1))
	assert.Equal(t, []string{"C", "B", "A"}, load(t, s, key))
}

func TestSwap_MissingRankRollsBack(t *testing.T) {
	s, _ := newSQLiteStore(t)
	seed(t, s, "A", "B")

	err := s.Swap(context.Background(), key, 0, 5)
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.Equal(t, []string{"A", "B"}, load(t, s, key))
}

func TestReplaceClearAndMetadata(t *testing.T) {
	s, _ := newSQLiteStore(t)
	ctx := context.Background()
	seed(t, s, "A", "B")

	require.NoError(t, s.Replace(ctx, key, 1, "Z"))
	assert.Equal(t, []string{"A", "Z"}, load(t, s, key))

	require.NoError(t, s.SetTitle(ctx, key, "Top"))
	require.NoError(t, s.SetThumbnail(ctx, key, "https://example.com/t.png"))
	require.NoError(t, s.Clear(ctx, key))
	assert.Empty(t, load(t, s, key))

	all, err := s.AllDetails(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Details{{Owner: 42, ListID: "anime", Title: "Top", ThumbnailURL: "https://example.com/t.png"}}, all)
}

func TestDropList(t *testing.T) {
	s, _ := newSQLiteStore(t)
	ctx := context.Background()
	seed(t, s, "A", "B")

	require.NoError(t, s.DropList(ctx, key))
	assert.Empty(t, load(t, s, key))

	all, err := s.AllDetails(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	assert.ErrorIs(t, s.DropList(ctx, key), common.ErrorNotFound)
}

func TestCreateList_Duplicate(t *testing.T) {
	s, _ := newSQLiteStore(t)
	ctx := context.Background()
	require.NoError(t, s.CreateList(ctx, models.Details{Owner: 1, ListID: "x"}))
	assert.Error(t, s.CreateList(ctx, models.Details{Owner: 1, ListID: "x"}))
}

func TestInsert_PostgresRollsBackOnInsertFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := NewStore(db, &repomanager.PostgresRepositoryManager{}, dbx.PingOptions{Attempts: 1})

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE lists SET rank = -\(rank`).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`UPDATE lists SET rank = -rank - 1`).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`INSERT INTO lists`).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err = s.Insert(context.Background(), key, 0, "A")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSync_PingFailure(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing().WillReturnError(errors.New("conn refused"))

	s := NewStore(db, &repomanager.PostgresRepositoryManager{}, dbx.PingOptions{Attempts: 1})
	err = s.Clear(context.Background(), key)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database unavailable")
}
