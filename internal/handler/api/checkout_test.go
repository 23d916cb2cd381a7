//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"luxe-escape/internal/domain/checkout"
	"luxe-escape/internal/handler/api"
	resdto "luxe-escape/internal/handler/dto/response"
	"luxe-escape/internal/infra/handoff"
	"luxe-escape/internal/infra/sessions"
	"luxe-escape/internal/pkg/clock"
	"luxe-escape/internal/pkg/config"
	"luxe-escape/internal/usecase/commands"
	"luxe-escape/internal/usecase/queries"
	"luxe-escape/tests/common/builder"
	"luxe-escape/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type CheckoutHandlerTestSuite struct {
	suite.Suite
	router  *gin.Engine
	cfg     config.Config
	signer  *handoff.Signer
	mockClk *clock.MockClock
	sleeper *clock.MockSleeper
}

func (s *CheckoutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.cfg = config.NewTestConfig()
	s.signer = handoff.NewSigner(s.cfg.Handoff)
	s.mockClk = clock.NewMockClock(time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC))
	s.sleeper = clock.NewMockSleeper()

	flows := sessions.NewFlowStore(s.cfg.Session)
	forms := sessions.NewFormStore(s.cfg.Session)

	checkoutCommands := commands.NewCheckoutCommands(forms, s.signer, s.mockClk, s.sleeper, s.cfg)
	sessionQueries := queries.NewSessionQueries(flows, forms, s.mockClk)
	handler := api.NewCheckoutHandler(checkoutCommands, sessionQueries)

	s.router.POST("/checkout/sessions", handler.StartSession)
	s.router.GET("/checkout/sessions/:id", handler.GetSession)
	s.router.PATCH("/checkout/sessions/:id/fields", handler.EditField)
	s.router.POST("/checkout/sessions/:id/submit", handler.Submit)
}

func TestCheckoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}

func (s *CheckoutHandlerTestSuite) startSession(token string) resdto.CheckoutFormResponse {
	body := map[string]string{}
	if token != "" {
		body["handoffToken"] = token
	}
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/checkout/sessions", body)
	var form resdto.CheckoutFormResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &form)
	return form
}

func (s *CheckoutHandlerTestSuite) signedToken() string {
	token, err := s.signer.Sign(builder.NewDraftBuilder().Build(), s.mockClk.Now())
	s.Require().NoError(err)
	return token
}

func (s *CheckoutHandlerTestSuite) fillValid(id string) {
	for field, value := range builder.ValidFormValues() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/checkout/sessions/"+id+"/fields",
			map[string]string{"field": field, "value": value})
		s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	}
}

func (s *CheckoutHandlerTestSuite) TestStartSession() {
	s.Run("with handoff token", func() {
		form := s.startSession(s.signedToken())

		s.Equal("Junior Suite", form.RoomName)
		s.Equal("2026-09-10", form.CheckIn)
		s.Equal("2026-09-14", form.CheckOut)
		s.Equal(4, form.Quote.Nights)
		s.Equal("$1596.00", form.Quote.Subtotal)
		s.Equal("$191.52", form.Quote.Taxes)
		s.Equal("$1787.52", form.Quote.Total)
		s.Equal("editing", form.State)
		s.Len(form.Values, 12)
	})

	s.Run("direct navigation falls back to the default booking", func() {
		form := s.startSession("")
		s.Equal("Luxury Suite", form.RoomName)
		s.Equal("2025-08-01", form.CheckIn)
		s.Equal(2, form.Quote.Nights)
	})
}

func (s *CheckoutHandlerTestSuite) TestEditField() {
	form := s.startSession(s.signedToken())
	url := "/checkout/sessions/" + form.ID.String() + "/fields"

	s.Run("expiry formats live", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]string{"field": checkout.FieldExpiryDate, "value": "1229"})
		var updated resdto.CheckoutFormResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &updated)
		s.Equal("12/29", updated.Values[checkout.FieldExpiryDate])
	})

	s.Run("unknown field reads 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]string{"field": "ssn", "value": "000"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown form field")
	})

	s.Run("unknown session reads 404", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/checkout/sessions/00000000-0000-0000-0000-000000000001/fields",
			map[string]string{"field": checkout.FieldFirstName, "value": "Ava"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})
}

func (s *CheckoutHandlerTestSuite) TestSubmit() {
	s.Run("validation failure returns the form with all errors", func() {
		form := s.startSession(s.signedToken())

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/checkout/sessions/"+form.ID.String()+"/submit", nil)
		var rejected resdto.CheckoutFormResponse
		s.Require().Equal(http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
		httptest.DecodeResponseBody(s.T(), rec.Body, &rejected)

		s.Equal("editing", rejected.State)
		s.Len(rejected.Errors, 12)
		s.Equal("first name is required", rejected.Errors[checkout.FieldFirstName])
		s.Empty(s.sleeper.Slept)
	})

	s.Run("valid form confirms and schedules the redirect", func() {
		form := s.startSession(s.signedToken())
		s.fillValid(form.ID.String())

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/checkout/sessions/"+form.ID.String()+"/submit", nil)
		var result resdto.SubmitResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &result)

		s.Len(result.Confirmation, 12)
		s.Equal("HTL", result.Confirmation[:3])
		s.Equal(int64(3000), result.RedirectAfterMs)
		s.Equal("/", result.RedirectTo)
		s.Equal("confirmed", result.Form.State)
		s.Equal([]time.Duration{s.cfg.Delays.Payment, s.cfg.Delays.Success}, s.sleeper.Slept)
	})

	s.Run("submit after confirmation reads 409", func() {
		form := s.startSession(s.signedToken())
		s.fillValid(form.ID.String())
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/checkout/sessions/"+form.ID.String()+"/submit", nil)
		s.Require().Equal(http.StatusOK, rec.Code)

		rec = httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/checkout/sessions/"+form.ID.String()+"/submit", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already being processed")
	})
}
