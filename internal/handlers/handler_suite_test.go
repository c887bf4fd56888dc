package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/SscSPs/bizbooks/internal/handlers"
	"github.com/SscSPs/bizbooks/internal/platform/config"
	"github.com/SscSPs/bizbooks/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

const (
	testJWTSecret = "test-secret-key-that-is-long-enough"
	testUserID    = "user-42"
	testBizID     = "biz-1"
)

// HandlerTestSuite drives the full router with mocked services behind it.
type HandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	token  string

	business  *MockBusinessService
	accounts  *MockAccountService
	ledger    *MockLedgerService
	years     *MockFinancialYearService
	journals  *MockJournalService
	banks     *MockBankAccountService
	reporting *MockReportingService
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.business = new(MockBusinessService)
	s.accounts = new(MockAccountService)
	s.ledger = new(MockLedgerService)
	s.years = new(MockFinancialYearService)
	s.journals = new(MockJournalService)
	s.banks = new(MockBankAccountService)
	s.reporting = new(MockReportingService)

	container := &portssvc.ServiceContainer{
		Business:      s.business,
		Account:       s.accounts,
		Ledger:        s.ledger,
		FinancialYear: s.years,
		Journal:       s.journals,
		BankAccount:   s.banks,
		Reporting:     s.reporting,
	}
	cfg := &config.Config{JWTSecret: testJWTSecret, IsProduction: true}

	s.router = gin.New()
	s.Require().NoError(handlers.RegisterRoutes(s.router, cfg, container, nil))

	token, err := utils.GenerateJWT(testUserID, testJWTSecret, time.Hour, "bizbooks-test")
	s.Require().NoError(err)
	s.token = token
}

func (s *HandlerTestSuite) TearDownTest() {
	s.business.AssertExpectations(s.T())
	s.accounts.AssertExpectations(s.T())
	s.ledger.AssertExpectations(s.T())
	s.years.AssertExpectations(s.T())
	s.journals.AssertExpectations(s.T())
	s.banks.AssertExpectations(s.T())
	s.reporting.AssertExpectations(s.T())
}

// do sends an authenticated request. body is JSON-encoded unless it is already a string.
func (s *HandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	return s.send(method, path, body, "Bearer "+s.token)
}

// send targets a path under the test business.
func (s *HandlerTestSuite) send(method, path string, body any, authorization string) *httptest.ResponseRecorder {
	return s.request(method, "/api/v1/businesses/"+testBizID+path, body, authorization)
}

// sendRoot sends an authenticated request to an absolute path.
func (s *HandlerTestSuite) sendRoot(method, url string, body any) *httptest.ResponseRecorder {
	return s.request(method, url, body, "Bearer "+s.token)
}

func (s *HandlerTestSuite) request(method, url string, body any, authorization string) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		payload, err := json.Marshal(b)
		s.Require().NoError(err)
		reader = bytes.NewBuffer(payload)
	}

	req, err := http.NewRequest(method, url, reader)
	s.Require().NoError(err)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// decode unmarshals the recorded body into v.
func (s *HandlerTestSuite) decode(w *httptest.ResponseRecorder, v any) {
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func (s *HandlerTestSuite) errorMessage(w *httptest.ResponseRecorder) string {
	var resp handlers.ErrorResponse
	s.decode(w, &resp)
	return resp.Error
}

func (s *HandlerTestSuite) TestHealth() {
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	s.Equal("OK", w.Body.String())
}

func (s *HandlerTestSuite) TestAuth_MissingAndMalformedTokens() {
	w := s.send(http.MethodGet, "/accounts", nil, "")
	s.Equal(http.StatusUnauthorized, w.Code)

	w = s.send(http.MethodGet, "/accounts", nil, "Token abc")
	s.Equal(http.StatusUnauthorized, w.Code)

	w = s.send(http.MethodGet, "/accounts", nil, "Bearer not-a-jwt")
	s.Equal(http.StatusUnauthorized, w.Code)

	wrong, err := utils.GenerateJWT(testUserID, "some-other-secret", time.Hour, "bizbooks-test")
	s.Require().NoError(err)
	w = s.send(http.MethodGet, "/accounts", nil, "Bearer "+wrong)
	s.Equal(http.StatusUnauthorized, w.Code)
}
