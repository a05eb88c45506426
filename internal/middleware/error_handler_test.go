package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"budget-tracker/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// ErrorHandlerTestSuite defines the test suite for the custom HTTP error handler
type ErrorHandlerTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

// SetupTest runs before each test
func (s *ErrorHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.HTTPErrorHandler = CustomHTTPErrorHandler
}

// TestErrorHandlerTestSuite runs the test suite
func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

func (s *ErrorHandlerTestSuite) handle(err error) (*httptest.ResponseRecorder, errors.ErrorResponse) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	CustomHTTPErrorHandler(err, c)

	var resp errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

// TestErrorHandler_EchoHTTPError tests mapping of echo.HTTPError to the standard envelope
func (s *ErrorHandlerTestSuite) TestErrorHandler_EchoHTTPError() {
	rec, resp := s.handle(echo.NewHTTPError(http.StatusNotFound, "route not found"))

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(string(errors.ValidationGeneral), resp.Error.Code)
	s.Equal("route not found", resp.Error.Message)
}

// TestErrorHandler_RateLimitStatus tests that 429 maps to the rate limit code
func (s *ErrorHandlerTestSuite) TestErrorHandler_RateLimitStatus() {
	rec, resp := s.handle(echo.NewHTTPError(http.StatusTooManyRequests, "slow down"))

	s.Equal(http.StatusTooManyRequests, rec.Code)
	s.Equal(string(errors.SystemRateLimitExceeded), resp.Error.Code)
}

// TestErrorHandler_GenericError tests that unknown errors become opaque 500s
func (s *ErrorHandlerTestSuite) TestErrorHandler_GenericError() {
	rec, resp := s.handle(fmt.Errorf("database exploded"))

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal(string(errors.SystemInternalError), resp.Error.Code)
	s.NotContains(resp.Error.Message, "exploded", "internal details stay out of the response")
}

// TestErrorHandler_UnknownTraceID tests the fallback trace ID when none was assigned
func (s *ErrorHandlerTestSuite) TestErrorHandler_UnknownTraceID() {
	_, resp := s.handle(echo.NewHTTPError(http.StatusBadRequest, "bad request"))

	s.Equal("unknown", resp.Error.TraceID)
}

// TestErrorHandler_UsesTraceIDFromContext tests that an assigned trace ID is propagated
func (s *ErrorHandlerTestSuite) TestErrorHandler_UsesTraceIDFromContext() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/budgets", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-abc-123")

	CustomHTTPErrorHandler(echo.NewHTTPError(http.StatusBadRequest, "bad month"), c)

	var resp errors.ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("trace-abc-123", resp.Error.TraceID)
}

// TestErrorHandler_CommittedResponse tests that an already-committed response is left alone
func (s *ErrorHandlerTestSuite) TestErrorHandler_CommittedResponse() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(c.NoContent(http.StatusOK))
	CustomHTTPErrorHandler(echo.ErrInternalServerError, c)

	s.Equal(http.StatusOK, rec.Code)
	s.Empty(rec.Body.Bytes())
}

// TestMapHTTPStatusToErrorCode tests the status code to error code mapping
func (s *ErrorHandlerTestSuite) TestMapHTTPStatusToErrorCode() {
	testCases := []struct {
		status int
		code   errors.ErrorCode
	}{
		{http.StatusBadRequest, errors.ValidationGeneral},
		{http.StatusNotFound, errors.ValidationGeneral},
		{http.StatusMethodNotAllowed, errors.ValidationGeneral},
		{http.StatusUnprocessableEntity, errors.ValidationGeneral},
		{http.StatusTooManyRequests, errors.SystemRateLimitExceeded},
		{http.StatusInternalServerError, errors.SystemInternalError},
		{http.StatusServiceUnavailable, errors.SystemServiceUnavailable},
		{http.StatusTeapot, errors.SystemInternalError},
	}

	for _, tc := range testCases {
		s.Equal(tc.code, mapHTTPStatusToErrorCode(tc.status))
	}
}
