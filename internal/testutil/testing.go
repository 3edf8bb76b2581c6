package testutil

import (
	"context"
	"encoding/json"
	"founderdeck/internal/config"
	"founderdeck/internal/data"
	"founderdeck/internal/middlewares"
	"founderdeck/internal/mocks"
	"founderdeck/internal/models"
	"founderdeck/internal/settings"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"
)

// TestContext holds everything needed for testing handlers and middlewares.
type TestContext struct {
	AppContext     *middlewares.AppContext
	Request        *http.Request
	Response       *httptest.ResponseRecorder
	MockController *gomock.Controller
	MockCache      *mocks.MockCacheProvider
	MockSession    *mocks.MockSessionProvider
	MockStorage    *mocks.MockStorageProvider
	MockGitHub     *mocks.MockGitHubProvider
	MockMailer     *mocks.MockMailer
	LogHandler     *TestLogHandler
}

func NewTestContext(t *testing.T) *TestContext {
	return newTestContext(t, nil)
}

// NewTestContextWithURL creates a complete test setup with sensible defaults
func NewTestContextWithURL(t *testing.T, method, url string) *TestContext {
	req := httptest.NewRequest(method, url, nil)
	return newTestContext(t, req)
}

// NewTestContextWithBody creates a test setup with a JSON request body.
func NewTestContextWithBody(t *testing.T, method, url, body string) *TestContext {
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return newTestContext(t, req)
}

func newTestContext(t *testing.T, req *http.Request) *TestContext {
	cfg := &config.Config{Storage: &config.StorageConfig{Configured: true}}

	logHandler := NewTestLogHandler()
	logger := slog.New(logHandler)

	ctrl := gomock.NewController(t)

	mockCache := mocks.NewMockCacheProvider(ctrl)
	mockSession := mocks.NewMockSessionProvider(ctrl)
	mockStorage := mocks.NewMockStorageProvider(ctrl)
	mockGitHub := mocks.NewMockGitHubProvider(ctrl)
	mockMailer := mocks.NewMockMailer(ctrl)

	rr := httptest.NewRecorder()

	baseCtx := context.Background()
	if req != nil {
		baseCtx = req.Context()
	}

	appCtx := &middlewares.AppContext{
		Context:        baseCtx,
		Config:         cfg,
		Logger:         logger,
		SessionManager: mockSession,
		OIDCProvider:   nil,
		GitHub:         mockGitHub,
		Mailer:         mockMailer,
		Settings:       settings.NewResolver(cfg, mockStorage),
		Cache:          mockCache,
		Storage:        mockStorage,
		Request:        req,
		Response:       rr,
	}

	return &TestContext{
		AppContext:     appCtx,
		Request:        req,
		Response:       rr,
		MockController: ctrl,
		MockCache:      mockCache,
		MockSession:    mockSession,
		MockStorage:    mockStorage,
		MockGitHub:     mockGitHub,
		MockMailer:     mockMailer,
		LogHandler:     logHandler,
	}
}

// NewTestContextWithRealCache creates a test context with a real MemCache instead of mocks.
func NewTestContextWithRealCache(method, url string) *TestContext {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	cfg := &config.Config{Storage: &config.StorageConfig{Configured: true}}
	cache := data.NewMemCache(cfg, logger)

	req := httptest.NewRequest(method, url, nil)
	rr := httptest.NewRecorder()

	appCtx := &middlewares.AppContext{
		Context:        req.Context(),
		Config:         cfg,
		Logger:         logger,
		SessionManager: nil,
		OIDCProvider:   nil,
		Cache:          cache,
		Request:        req,
		Response:       rr,
	}

	return &TestContext{
		AppContext: appCtx,
		Request:    req,
		Response:   rr,
	}
}

// Finish should be called at the end of tests to clean up mocks
func (tc *TestContext) Finish() {
	if tc.MockController != nil {
		tc.MockController.Finish()
	}
}

func (tc *TestContext) AssertLogContains(t *testing.T, level slog.Level, message string) {
	if !tc.LogHandler.ContainsMessage(level, message) {
		t.Errorf("Expected to find log entry with level %v containing message: %s", level, message)
	}
}

func (tc *TestContext) AssertLogCount(t *testing.T, level slog.Level, expectedCount int) {
	count := tc.LogHandler.CountByLevel(level)
	if count != expectedCount {
		t.Errorf("Expected %d log entries at level %v, got %d", expectedCount, level, count)
	}
}

func (tc *TestContext) GetLogRecords() []TestLogRecord {
	return tc.LogHandler.GetRecords()
}

func (tc *TestContext) ClearLogRecords() {
	tc.LogHandler.Reset()
}

// CallHandler executes a handler with the test context
func (tc *TestContext) CallHandler(handler middlewares.AppHandler) {
	handler(tc.AppContext)
}

// AssertStatus checks the HTTP status code
func (tc *TestContext) AssertStatus(t *testing.T, expectedStatus int) {
	if tc.Response.Code != expectedStatus {
		t.Errorf("Expected status %d, got %d", expectedStatus, tc.Response.Code)
	}
}

// AssertContentType checks the content type header
func (tc *TestContext) AssertContentType(t *testing.T, expectedType string) {
	if ct := tc.Response.Header().Get("Content-Type"); ct != expectedType {
		t.Errorf("Expected content type %s, got %s", expectedType, ct)
	}
}

// AssertRedirect checks for a redirect status and Location header.
func (tc *TestContext) AssertRedirect(t *testing.T, expectedStatus int, expectedLocation string) {
	tc.AssertStatus(t, expectedStatus)
	if loc := tc.Response.Header().Get("Location"); loc != expectedLocation {
		t.Errorf("Expected redirect to %s, got %s", expectedLocation, loc)
	}
}

// GetJSONResponse parses the response body as JSON
func (tc *TestContext) GetJSONResponse(t *testing.T) map[string]interface{} {
	var response map[string]interface{}
	if err := json.Unmarshal(tc.Response.Body.Bytes(), &response); err != nil {
		t.Fatalf("Could not parse JSON response: %v", err)
	}
	return response
}

// GetJSONResponseArray parses the response body as a JSON array
func (tc *TestContext) GetJSONResponseArray(t *testing.T) []interface{} {
	var response []interface{}
	if err := json.Unmarshal(tc.Response.Body.Bytes(), &response); err != nil {
		t.Fatalf("Could not parse JSON array response: %v", err)
	}
	return response
}

// AssertJSONField checks a specific field in a JSON response
func (tc *TestContext) AssertJSONField(t *testing.T, field string, expected any) {
	response := tc.GetJSONResponse(t)
	if actual, ok := response[field]; !ok || actual != expected {
		t.Errorf("Expected %s to be %v, got %v", field, expected, response[field])
	}
}

func (tc *TestContext) AssertJSONBool(t *testing.T, field string, expected bool) {
	response := tc.GetJSONResponse(t)
	actual, exists := response[field]

	if !exists {
		t.Errorf("Field %s not found in response", field)
		return
	}

	actualBool, ok := actual.(bool)
	if !ok {
		t.Errorf("Expected %s to be a boolean, got %T", field, actual)
		return
	}

	if actualBool != expected {
		t.Errorf("Expected %s to be %v, got %v", field, expected, actualBool)
	}
}

// AssertJSONString checks a specific string field in a JSON response
func (tc *TestContext) AssertJSONString(t *testing.T, field string, expected string) {
	response := tc.GetJSONResponse(t)
	actual, exists := response[field]

	if !exists {
		t.Errorf("Field %s not found in response", field)
		return
	}

	actualString, ok := actual.(string)
	if !ok {
		t.Errorf("Expected %s to be a string, got %T", field, actual)
		return
	}

	if actualString != expected {
		t.Errorf("Expected %s to be %q, got %q", field, expected, actualString)
	}
}

// AssertJSONArrayLength checks the length of a JSON array response.
func (tc *TestContext) AssertJSONArrayLength(t *testing.T, expected int) {
	response := tc.GetJSONResponseArray(t)
	if len(response) != expected {
		t.Errorf("Expected JSON array length %d, got %d", expected, len(response))
	}
}

// WithConfig allows you to override the default config for specific tests
func (tc *TestContext) WithConfig(cfg *config.Config) *TestContext {
	tc.AppContext.Config = cfg
	tc.AppContext.Settings = settings.NewResolver(cfg, tc.MockStorage)
	return tc
}

// WithLogger allows you to override the default logger for specific tests
func (tc *TestContext) WithLogger(logger *slog.Logger) *TestContext {
	tc.AppContext.Logger = logger
	return tc
}

// WithCache allows you to override the cache with a different mock or implementation
func (tc *TestContext) WithCache(cache data.CacheProvider) *TestContext {
	tc.AppContext.Cache = cache
	return tc
}

// WithSessionManager allows you to override the session manager with a different mock or implementation
func (tc *TestContext) WithSessionManager(sm middlewares.SessionProvider) *TestContext {
	tc.AppContext.SessionManager = sm
	return tc
}

// WithSettings allows you to override the settings resolver for specific tests
func (tc *TestContext) WithSettings(resolver *settings.Resolver) *TestContext {
	tc.AppContext.Settings = resolver
	return tc
}

// WithoutStorage simulates an unconfigured backend.
func (tc *TestContext) WithoutStorage() *TestContext {
	tc.AppContext.Storage = nil
	if tc.AppContext.Config.Storage != nil {
		tc.AppContext.Config.Storage.Configured = false
	}
	tc.AppContext.Settings = settings.NewResolver(tc.AppContext.Config, nil)
	return tc
}

// WithQueryParam adds a query parameter to the request.
func (tc *TestContext) WithQueryParam(key, value string) *TestContext {
	q := tc.Request.URL.Query()
	q.Add(key, value)
	tc.Request.URL.RawQuery = q.Encode()
	return tc
}

// WithHeader adds a header to the request.
func (tc *TestContext) WithHeader(key, value string) *TestContext {
	tc.Request.Header.Set(key, value)
	return tc
}

// WithCookie adds a cookie to the request.
func (tc *TestContext) WithCookie(name, value string) *TestContext {
	tc.Request.AddCookie(&http.Cookie{Name: name, Value: value})
	return tc
}

// WithRequest allows you to set a custom request (useful for tests that don't use URL constructor)
func (tc *TestContext) WithRequest(req *http.Request) *TestContext {
	tc.Request = req
	tc.AppContext.Request = req
	tc.AppContext.Context = req.Context()
	return tc
}

// WithURLParam injects a chi route parameter into the request context.
func (tc *TestContext) WithURLParam(key, value string) *TestContext {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	req := tc.Request.WithContext(context.WithValue(tc.Request.Context(), chi.RouteCtxKey, rctx))
	return tc.WithRequest(req)
}

// WithBody replaces the request body with the given JSON string.
func (tc *TestContext) WithBody(body string) *TestContext {
	tc.Request.Body = io.NopCloser(strings.NewReader(body))
	tc.Request.Header.Set("Content-Type", "application/json")
	return tc
}

// ExpectCacheGet sets up an expectation for cache.Get()
func (tc *TestContext) ExpectCacheGet(key string, returnData []byte, found bool) *gomock.Call {
	return tc.MockCache.EXPECT().Get(gomock.Any(), key).Return(returnData, found)
}

// ExpectCacheSet sets up an expectation for cache.Set()
func (tc *TestContext) ExpectCacheSet(key string) *gomock.Call {
	return tc.MockCache.EXPECT().Set(gomock.Any(), key, gomock.Any(), gomock.Any())
}

// ExpectCacheDelete sets up an expectation for cache.Delete()
func (tc *TestContext) ExpectCacheDelete(key string) *gomock.Call {
	return tc.MockCache.EXPECT().Delete(gomock.Any(), key)
}

// ExpectAuthenticatedUser sets up an expectation for session.GetAuthenticatedUser()
func (tc *TestContext) ExpectAuthenticatedUser(user *models.User, ok bool) *gomock.Call {
	return tc.MockSession.EXPECT().GetAuthenticatedUser(tc.AppContext).Return(user, ok)
}

// ExpectUserSetting sets up an expectation for storage.GetUserSetting()
func (tc *TestContext) ExpectUserSetting(ownerID, name, value string, err error) *gomock.Call {
	return tc.MockStorage.EXPECT().GetUserSetting(gomock.Any(), ownerID, name).Return(value, err)
}
