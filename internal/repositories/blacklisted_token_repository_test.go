package repositories

import (
	"testing"
	"time"

	"finance-dashboard/internal/database"
	"finance-dashboard/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type BlacklistedTokenRepositorySuite struct {
	suite.Suite
	newRepo func() BlacklistedTokenRepositoryInterface
	repo    BlacklistedTokenRepositoryInterface
}

func TestGormBlacklistedTokenRepository(t *testing.T) {
	s := &BlacklistedTokenRepositorySuite{}
	s.newRepo = func() BlacklistedTokenRepositoryInterface {
		return NewBlacklistedTokenRepository(database.SetupTestDB(s.T()).DB)
	}
	suite.Run(t, s)
}

func TestMemoryBlacklistedTokenRepository(t *testing.T) {
	suite.Run(t, &BlacklistedTokenRepositorySuite{newRepo: NewMemoryBlacklistedTokenRepository})
}

func (s *BlacklistedTokenRepositorySuite) SetupTest() {
	s.repo = s.newRepo()
}

func (s *BlacklistedTokenRepositorySuite) token(jti string, expiresIn time.Duration) *models.BlacklistedToken {
	return &models.BlacklistedToken{JTI: jti, UserID: uuid.New(), ExpiresAt: time.Now().Add(expiresIn)}
}

func (s *BlacklistedTokenRepositorySuite) TestCreateAndGet() {
	token := s.token("jti-1", time.Hour)

	s.Require().NoError(s.repo.Create(token))
	s.NotEqual(uuid.Nil, token.ID)
	s.False(token.BlacklistedAt.IsZero())

	found, err := s.repo.GetByJTI("jti-1")
	s.Require().NoError(err)
	s.Equal(token.ID, found.ID)
	s.Equal(token.UserID, found.UserID)
}

func (s *BlacklistedTokenRepositorySuite) TestGetByJTI_NotFound() {
	_, err := s.repo.GetByJTI("missing")

	s.ErrorIs(err, ErrTokenNotFound)
}

func (s *BlacklistedTokenRepositorySuite) TestCreate_Duplicate() {
	s.Require().NoError(s.repo.Create(s.token("dup", time.Hour)))

	err := s.repo.Create(s.token("dup", time.Hour))

	s.ErrorIs(err, ErrTokenAlreadyBlacklisted)
}

func (s *BlacklistedTokenRepositorySuite) TestDeleteExpired() {
	s.Require().NoError(s.repo.Create(s.token("old", -time.Hour)))
	s.Require().NoError(s.repo.Create(s.token("new", time.Hour)))

	removed, err := s.repo.DeleteExpired()

	s.NoError(err)
	s.Equal(int64(1), removed)
	_, err = s.repo.GetByJTI("old")
	s.ErrorIs(err, ErrTokenNotFound)
	_, err = s.repo.GetByJTI("new")
	s.NoError(err)
}
