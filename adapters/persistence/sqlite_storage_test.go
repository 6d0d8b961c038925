package persistence

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type SQLiteStorageTestSuite struct {
	suite.Suite
	path    string
	storage *SQLiteStorage
}

func (s *SQLiteStorageTestSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "portfolio.db")
	st, err := OpenSQLiteStorage(context.Background(), s.path, logger.NewNopLogger())
	s.Require().NoError(err)
	s.storage = st
}

func (s *SQLiteStorageTestSuite) TearDownTest() {
	if s.storage != nil {
		s.storage.Close()
	}
}

func TestSQLiteStorage(t *testing.T) {
	suite.Run(t, new(SQLiteStorageTestSuite))
}

func (s *SQLiteStorageTestSuite) Test_Get_EmptySlot() {
	_, err := s.storage.Get(context.Background(), portfolio.SlotAllProfiles)
	s.ErrorIs(err, portfolio.ErrSlotNotFound)
}

func (s *SQLiteStorageTestSuite) Test_Set_Upserts() {
	ctx := context.Background()
	s.Require().NoError(s.storage.Set(ctx, portfolio.SlotAllProfiles, "first"))
	s.Require().NoError(s.storage.Set(ctx, portfolio.SlotAllProfiles, "second"))

	v, err := s.storage.Get(ctx, portfolio.SlotAllProfiles)
	s.Require().NoError(err)
	s.Equal("second", v)
}

func (s *SQLiteStorageTestSuite) Test_Persists_Across_Reopen() {
	ctx := context.Background()
	s.Require().NoError(s.storage.Set(ctx, portfolio.SlotLegacy, `{"profile":{}}`))
	s.Require().NoError(s.storage.Close())

	reopened, err := OpenSQLiteStorage(ctx, s.path, logger.NewNopLogger())
	s.Require().NoError(err)
	s.storage = reopened

	v, err := reopened.Get(ctx, portfolio.SlotLegacy)
	s.Require().NoError(err)
	s.Equal(`{"profile":{}}`, v)
}
