package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/textfix/internal/common"
	"github.com/dmitrijs2005/textfix/internal/logging"
	"github.com/dmitrijs2005/textfix/internal/server/corrector"
	"github.com/dmitrijs2005/textfix/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCorrector struct {
	out string
	err error
}

func (s stubCorrector) Correct(context.Context, string) (string, error) { return s.out, s.err }

func TestHistory_Analyze(t *testing.T) {
	db, _ := newSQLMockDB(t)
	rm := newFakeRepoManager()
	s := NewHistoryService(db, rm, corrector.NewRules(), logging.Discard())

	ex, err := s.Analyze(context.Background(), 7, "helo wrld")
	require.NoError(t, err)
	assert.Equal(t, int64(7), ex.UserID)
	assert.Equal(t, "helo wrld", ex.InputText)
	assert.Equal(t, "Hello world", ex.CorrectedText)
	assert.Len(t, rm.h.created, 1)
}

func TestHistory_AnalyzeEmpty(t *testing.T) {
	db, _ := newSQLMockDB(t)
	rm := newFakeRepoManager()
	s := NewHistoryService(db, rm, corrector.NewRules(), logging.Discard())

	_, err := s.Analyze(context.Background(), 7, " \n\t")
	assert.ErrorIs(t, err, common.ErrorInputEmpty)
	assert.Empty(t, rm.h.created)
}

func TestHistory_AnalyzeCorrectorError(t *testing.T) {
	db, _ := newSQLMockDB(t)
	rm := newFakeRepoManager()
	s := NewHistoryService(db, rm, stubCorrector{err: errBoom}, logging.Discard())

	_, err := s.Analyze(context.Background(), 7, "text")
	assert.ErrorIs(t, err, common.ErrorInternal)
	assert.Empty(t, rm.h.created)
}

func TestHistory_ListAndDelete(t *testing.T) {
	db, mock := newSQLMockDB(t)
	rm := newFakeRepoManager()
	rm.h = newFakeHistoryRepo(
		models.Exchange{ID: 1, UserID: 7, InputText: "a"},
		models.Exchange{ID: 2, UserID: 8, InputText: "b"},
		models.Exchange{ID: 3, UserID: 7, InputText: "c"},
	)
	s := NewHistoryService(db, rm, stubCorrector{}, logging.Discard())
	ctx := context.Background()

	list, err := s.List(ctx, 7)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(3), list[0].ID)
	assert.Equal(t, int64(1), list[1].ID)

	mock.ExpectBegin()
	mock.ExpectCommit()
	require.NoError(t, s.Delete(ctx, 7, 3))

	mock.ExpectBegin()
	mock.ExpectRollback()
	assert.ErrorIs(t, s.Delete(ctx, 7, 2), common.ErrorForbidden)

	mock.ExpectBegin()
	mock.ExpectRollback()
	assert.ErrorIs(t, s.Delete(ctx, 7, 99), common.ErrorNotFound)

	assert.Equal(t, []int64{3}, rm.h.deleted)
	require.NoError(t, mock.ExpectationsWereMet())
}
