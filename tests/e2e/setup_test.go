//go:build e2e
// +build e2e

package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	postgresDriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/crewmatch/staffing/internal/database/migrate"
	"github.com/crewmatch/staffing/internal/health"
	"github.com/crewmatch/staffing/internal/notification"
	offerModel "github.com/crewmatch/staffing/internal/offer/model"
	offerRouter "github.com/crewmatch/staffing/internal/offer/router"
	statisticsRouter "github.com/crewmatch/staffing/internal/statistics/router"
	teamrequestModel "github.com/crewmatch/staffing/internal/teamrequest/model"
	teamrequestRouter "github.com/crewmatch/staffing/internal/teamrequest/router"
)

// E2ETestSuite runs the full HTTP surface against a real PostgreSQL instance.
// The application router runs in-process and talks to a disposable container.
type E2ETestSuite struct {
	suite.Suite
	ctx         context.Context
	pgContainer *postgres.PostgresContainer
	db          *gorm.DB
	server      *httptest.Server
	httpClient  *http.Client
}

// SetupSuite runs once before all tests
func (s *E2ETestSuite) SetupSuite() {
	s.ctx = context.Background()

	pgContainer, err := postgres.Run(s.ctx,
		"postgres:12-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(s.T(), err, "failed to start PostgreSQL container")
	s.pgContainer = pgContainer

	connStr, err := pgContainer.ConnectionString(s.ctx, "sslmode=disable")
	require.NoError(s.T(), err, "failed to get connection string")

	db, err := gorm.Open(postgresDriver.Open(connStr), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err, "failed to connect to database")
	s.db = db

	// The test binary runs from tests/e2e, so point the migrator at the
	// repository's migrations directory.
	require.NoError(s.T(), os.Setenv("MIGRATIONS_PATH", "../../migrations"))
	require.NoError(s.T(), migrate.Migrate(db), "failed to apply migrations")

	s.server = httptest.NewServer(s.buildRouter(db))
	s.httpClient = &http.Client{
		Timeout: 30 * time.Second,
	}
}

// TearDownSuite runs once after all tests
func (s *E2ETestSuite) TearDownSuite() {
	if s.server != nil {
		s.server.Close()
	}
	if s.pgContainer != nil {
		_ = s.pgContainer.Terminate(s.ctx)
	}
	_ = os.Unsetenv("MIGRATIONS_PATH")
}

// SetupTest runs before each test
func (s *E2ETestSuite) SetupTest() {
	s.cleanDatabase()
	s.seedAccounts()
}

func (s *E2ETestSuite) buildRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	log := zap.NewNop().Sugar()

	healthHandler := health.New(db, log)
	r.GET("/health", healthHandler.Check)

	teamrequestRouter.RegisterRoutes(r, db, log)
	offerRouter.RegisterRoutes(r, db, log, notification.NewZapNotifier(log))
	statisticsRouter.RegisterRoutes(r, db, log)
	return r
}

// cleanDatabase truncates all tables
func (s *E2ETestSuite) cleanDatabase() {
	s.db.Exec("TRUNCATE TABLE offers CASCADE")
	s.db.Exec("TRUNCATE TABLE role_slots CASCADE")
	s.db.Exec("TRUNCATE TABLE team_requests CASCADE")
	s.db.Exec("TRUNCATE TABLE accounts CASCADE")
}

// seedAccounts inserts the account directory used by every scenario:
// one company, two coordinators and three workers.
func (s *E2ETestSuite) seedAccounts() {
	err := s.db.Exec(`
		INSERT INTO accounts (id, name, account_type, is_active) VALUES
			(1, 'Port of Rotterdam BV', 'COMPANY', TRUE),
			(2, 'Coordinator Kim', 'COORDINATOR', TRUE),
			(6, 'Coordinator Lee', 'COORDINATOR', TRUE),
			(3, 'Worker Alice', 'WORKER', TRUE),
			(4, 'Worker Bob', 'WORKER', TRUE),
			(5, 'Worker Carol', 'WORKER', TRUE)
	`).Error
	require.NoError(s.T(), err, "failed to seed accounts")
}

// doRequest performs HTTP request and returns response
func (s *E2ETestSuite) doRequest(method, path string, body io.Reader) (*http.Response, []byte) {
	req, err := http.NewRequest(method, s.server.URL+path, body)
	require.NoError(s.T(), err, "failed to create request")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err, "failed to perform request")

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err, "failed to read response body")
	resp.Body.Close()

	return resp, respBody
}

// doRequestNoFail performs HTTP request and returns response with error.
// Safe to use in goroutines as it doesn't call require/assert.
func (s *E2ETestSuite) doRequestNoFail(method, path string, body io.Reader) (*http.Response, []byte, error) {
	req, err := http.NewRequest(method, s.server.URL+path, body)
	if err != nil {
		return nil, nil, err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, nil, err
	}

	respBody, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return resp, nil, err
	}

	return resp, respBody, nil
}

// acceptOfferNoFail accepts an invitation via HTTP API and returns error.
// Safe to use in goroutines as it doesn't call require/assert.
func (s *E2ETestSuite) acceptOfferNoFail(slotID, workerID int64) (*http.Response, []byte, error) {
	req := offerModel.AcceptOfferRequest{
		SlotID:   slotID,
		WorkerID: workerID,
	}
	bodyBytes, err := json.Marshal(req)
	if err != nil {
		return nil, nil, err
	}

	return s.doRequestNoFail("POST", "/offer/accept", strings.NewReader(string(bodyBytes)))
}

// createDemand creates a team request via HTTP API
func (s *E2ETestSuite) createDemand(req *teamrequestModel.CreateDemandRequest) (*http.Response, *teamrequestModel.TeamRequestResponse) {
	bodyBytes, _ := json.Marshal(req)
	resp, respBody := s.doRequest("POST", "/demand/create", strings.NewReader(string(bodyBytes)))

	if resp.StatusCode != http.StatusCreated {
		s.T().Logf("failed to create demand: status=%d body=%s", resp.StatusCode, string(respBody))
		return resp, nil
	}

	var result struct {
		TeamRequest teamrequestModel.TeamRequestResponse `json:"team_request"`
	}
	err := json.Unmarshal(respBody, &result)
	require.NoError(s.T(), err, "failed to unmarshal demand response")

	return resp, &result.TeamRequest
}

// getDemand fetches a team request via HTTP API
func (s *E2ETestSuite) getDemand(teamRequestID int64) (*http.Response, *teamrequestModel.TeamRequestResponse) {
	resp, respBody := s.doRequest("GET", fmt.Sprintf("/demand/get?team_request_id=%d", teamRequestID), nil)

	if resp.StatusCode != http.StatusOK {
		return resp, nil
	}

	var result struct {
		TeamRequest teamrequestModel.TeamRequestResponse `json:"team_request"`
	}
	err := json.Unmarshal(respBody, &result)
	require.NoError(s.T(), err, "failed to unmarshal demand response")

	return resp, &result.TeamRequest
}

// getRoleSummary fetches the per-role projection of a demand via HTTP API
func (s *E2ETestSuite) getRoleSummary(teamRequestID int64) (*http.Response, *teamrequestModel.RoleSummaryResponse) {
	resp, respBody := s.doRequest("GET", fmt.Sprintf("/demand/roles?team_request_id=%d", teamRequestID), nil)

	if resp.StatusCode != http.StatusOK {
		return resp, nil
	}

	var result teamrequestModel.RoleSummaryResponse
	err := json.Unmarshal(respBody, &result)
	require.NoError(s.T(), err, "failed to unmarshal role summary response")

	return resp, &result
}

// sendOffers issues invitations via HTTP API
func (s *E2ETestSuite) sendOffers(req *offerModel.SendOffersRequest) (*http.Response, *offerModel.SendOffersResponse, []byte) {
	bodyBytes, _ := json.Marshal(req)
	resp, respBody := s.doRequest("POST", "/offer/send", strings.NewReader(string(bodyBytes)))

	if resp.StatusCode != http.StatusCreated {
		return resp, nil, respBody
	}

	var result offerModel.SendOffersResponse
	err := json.Unmarshal(respBody, &result)
	require.NoError(s.T(), err, "failed to unmarshal send offers response")

	return resp, &result, respBody
}

// acceptOffer accepts an invitation via HTTP API
func (s *E2ETestSuite) acceptOffer(slotID, workerID int64) (*http.Response, *offerModel.AllocationResult, []byte) {
	req := offerModel.AcceptOfferRequest{
		SlotID:   slotID,
		WorkerID: workerID,
	}
	bodyBytes, _ := json.Marshal(req)
	resp, respBody := s.doRequest("POST", "/offer/accept", strings.NewReader(string(bodyBytes)))

	if resp.StatusCode != http.StatusOK {
		return resp, nil, respBody
	}

	var result struct {
		Allocation offerModel.AllocationResult `json:"allocation"`
	}
	err := json.Unmarshal(respBody, &result)
	require.NoError(s.T(), err, "failed to unmarshal accept response")

	return resp, &result.Allocation, respBody
}

// listOffers fetches a worker's reconciled offer list via HTTP API
func (s *E2ETestSuite) listOffers(workerID int64) (*http.Response, *offerModel.ListOffersResponse) {
	resp, respBody := s.doRequest("GET", fmt.Sprintf("/offer/list?worker_id=%d", workerID), nil)

	if resp.StatusCode != http.StatusOK {
		return resp, nil
	}

	var result offerModel.ListOffersResponse
	err := json.Unmarshal(respBody, &result)
	require.NoError(s.T(), err, "failed to unmarshal list offers response")

	return resp, &result
}

// parseErrorResponse parses error response
func (s *E2ETestSuite) parseErrorResponse(respBody []byte) (string, string) {
	var errResp struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	err := json.Unmarshal(respBody, &errResp)
	require.NoError(s.T(), err, "failed to unmarshal error response")
	return errResp.Error.Code, errResp.Error.Message
}
