package config

import (
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	s.T().Setenv("APP_ENV", "testing")
	s.T().Setenv("JWT_PRIVATE_KEY", "")
	s.T().Setenv("JWT_PUBLIC_KEY", "")
}

func (s *ConfigTestSuite) TestLoad_Defaults() {
	cfg := Load()

	s.Equal(10, cfg.Query.PageSize)
	s.Equal(300*time.Millisecond, cfg.Query.SearchDebounce)
	s.Equal(30, cfg.Query.DefaultRangeDays)
	s.Equal(5, cfg.Query.RecentCount)
	s.Equal(DriverMemory, cfg.Database.Driver)
	s.True(cfg.Database.IsMemory())
	s.Equal("a@a.com", cfg.Auth.DemoEmail)
	s.Equal("teste123", cfg.Auth.DemoPassword)
	s.Equal([]string{"*"}, cfg.Server.CORSAllowOrigins)
	s.NotNil(cfg.JWT.PrivateKey)
	s.NotNil(cfg.JWT.PublicKey)
	s.NotNil(cfg.Query.Location)
	s.True(cfg.IsTesting())
}

func (s *ConfigTestSuite) TestLoad_Overrides() {
	s.T().Setenv("QUERY_PAGE_SIZE", "25")
	s.T().Setenv("QUERY_SEARCH_DEBOUNCE", "150ms")
	s.T().Setenv("STORE_DRIVER", "SQLite")
	s.T().Setenv("QUERY_TIMEZONE", "UTC")
	s.T().Setenv("CORS_ALLOW_ORIGINS", "http://a.test, http://b.test")

	cfg := Load()

	s.Equal(25, cfg.Query.PageSize)
	s.Equal(150*time.Millisecond, cfg.Query.SearchDebounce)
	s.Equal(DriverSQLite, cfg.Database.Driver)
	s.False(cfg.Database.IsMemory())
	s.Equal(time.UTC, cfg.Query.Location)
	s.Equal([]string{"http://a.test", "http://b.test"}, cfg.Server.CORSAllowOrigins)
}

func (s *ConfigTestSuite) TestLoad_InvalidValuesFallBack() {
	s.T().Setenv("QUERY_PAGE_SIZE", "-3")
	s.T().Setenv("QUERY_SEARCH_DEBOUNCE", "soon")
	s.T().Setenv("QUERY_TIMEZONE", "Mars/Olympus_Mons")

	cfg := Load()

	s.Equal(10, cfg.Query.PageSize)
	s.Equal(300*time.Millisecond, cfg.Query.SearchDebounce)
	s.Equal(time.Local, cfg.Query.Location)
}

func (s *ConfigTestSuite) TestLoadJWTKeys_FromEnv() {
	privateKey, publicKey, err := GenerateRSAKeyPair()
	s.Require().NoError(err)

	privPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(privateKey)})
	pubDER, err := x509.MarshalPKIXPublicKey(publicKey)
	s.Require().NoError(err)
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER})

	s.T().Setenv("JWT_PRIVATE_KEY", base64.StdEncoding.EncodeToString(privPEM))
	s.T().Setenv("JWT_PUBLIC_KEY", base64.StdEncoding.EncodeToString(pubPEM))

	cfg := Load()

	s.True(privateKey.Equal(cfg.JWT.PrivateKey))
	s.True(publicKey.Equal(cfg.JWT.PublicKey))
}

func (s *ConfigTestSuite) TestLoadJWTKeys_ProductionRequiresKeys() {
	cfg := &Config{Server: ServerConfig{Environment: "production"}}

	_, _, err := cfg.loadJWTKeys()

	s.Error(err)
	s.Contains(err.Error(), "must be set in production")
}

func (s *ConfigTestSuite) TestDatabaseURL() {
	db := DatabaseConfig{User: "u", Password: "p", Host: "h", Port: "5432", Name: "d", SSLMode: "disable"}

	s.Equal("postgres://u:p@h:5432/d?sslmode=disable", db.URL())
	s.Equal("host=h port=5432 user=u password=p dbname=d sslmode=disable", db.DSN())
}
