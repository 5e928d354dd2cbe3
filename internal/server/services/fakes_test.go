package services

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/textfix/internal/common"
	"github.com/dmitrijs2005/textfix/internal/dbx"
	"github.com/dmitrijs2005/textfix/internal/server/models"
	"github.com/dmitrijs2005/textfix/internal/server/repositories/history"
	"github.com/dmitrijs2005/textfix/internal/server/repositories/otps"
	"github.com/dmitrijs2005/textfix/internal/server/repositories/users"
)

var errBoom = errors.New("boom")

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

type fakeUsersRepo struct {
	mu      sync.Mutex
	byEmail map[string]*models.User
	nextID  int64
	err     error
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{byEmail: map[string]*models.User{}}
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}
	f.nextID++
	cp := *u
	cp.ID = f.nextID
	cp.CreatedAt = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	f.byEmail[u.Email] = &cp
	return &cp, nil
}

func (f *fakeUsersRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

func (f *fakeUsersRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

type fakeOTPRepo struct {
	mu       sync.Mutex
	records  map[string]*models.OTP
	deleted  []string
	afterGet func()
}

func newFakeOTPRepo() *fakeOTPRepo {
	return &fakeOTPRepo{records: map[string]*models.OTP{}}
}

func (f *fakeOTPRepo) Upsert(_ context.Context, o *models.OTP) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *o
	cp.VerifiedAt = nil
	f.records[o.Email] = &cp
	return nil
}

func (f *fakeOTPRepo) Get(_ context.Context, email string) (*models.OTP, error) {
	f.mu.Lock()
	o, ok := f.records[email]
	if !ok {
		f.mu.Unlock()
		return nil, common.ErrorNotFound
	}
	cp := *o
	f.mu.Unlock()
	if f.afterGet != nil {
		f.afterGet()
	}
	return &cp, nil
}

func (f *fakeOTPRepo) MarkVerified(_ context.Context, email string, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.records[email]
	if !ok || o.VerifiedAt != nil {
		return common.ErrorNotFound
	}
	o.VerifiedAt = &at
	return nil
}

func (f *fakeOTPRepo) Delete(_ context.Context, email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.records, email)
	f.deleted = append(f.deleted, email)
	return nil
}

type fakeHistoryRepo struct {
	mu      sync.Mutex
	items   map[int64]models.Exchange
	nextID  int64
	created []models.Exchange
	deleted []int64
}

func newFakeHistoryRepo(items ...models.Exchange) *fakeHistoryRepo {
	f := &fakeHistoryRepo{items: map[int64]models.Exchange{}}
	for _, ex := range items {
		f.items[ex.ID] = ex
		if ex.ID > f.nextID {
			f.nextID = ex.ID
		}
	}
	return f
}

func (f *fakeHistoryRepo) Create(_ context.Context, ex *models.Exchange) (*models.Exchange, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	cp := *ex
	cp.ID = f.nextID
	cp.CreatedAt = time.Now()
	f.items[cp.ID] = cp
	f.created = append(f.created, cp)
	return &cp, nil
}

func (f *fakeHistoryRepo) ListByUser(_ context.Context, userID int64) ([]models.Exchange, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Exchange{}
	for _, ex := range f.items {
		if ex.UserID == userID {
			out = append(out, ex)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeHistoryRepo) Get(_ context.Context, id int64) (*models.Exchange, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ex, ok := f.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &ex, nil
}

func (f *fakeHistoryRepo) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.items, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	o *fakeOTPRepo
	h *fakeHistoryRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{u: newFakeUsersRepo(), o: newFakeOTPRepo(), h: newFakeHistoryRepo()}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository              { return m.u }
func (m *fakeRepoManager) History(dbx.DBTX) history.Repository          { return m.h }
func (m *fakeRepoManager) OTPs(dbx.DBTX) otps.Repository                { return m.o }
