//go:build e2e

package journey_test

import (
	"net/http"
	"testing"
	"time"

	"luxe-escape/internal/handler"
	"luxe-escape/internal/handler/api"
	resdto "luxe-escape/internal/handler/dto/response"
	"luxe-escape/internal/infra/catalog"
	"luxe-escape/internal/infra/handoff"
	"luxe-escape/internal/infra/sessions"
	"luxe-escape/internal/pkg/clock"
	"luxe-escape/internal/pkg/config"
	"luxe-escape/internal/usecase/commands"
	"luxe-escape/internal/usecase/queries"
	"luxe-escape/tests/common/builder"
	"luxe-escape/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// JourneyTestSuite drives the whole guest journey through the assembled
// router: browse rooms, pick dates and guests, search, confirm, then pay.
type JourneyTestSuite struct {
	suite.Suite
	router  *gin.Engine
	sleeper *clock.MockSleeper
}

func (s *JourneyTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.sleeper = clock.NewMockSleeper()

	cfg := config.NewTestConfig()
	clk := clock.NewMockClock(time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC))
	signer := handoff.NewSigner(cfg.Handoff)
	flows := sessions.NewFlowStore(cfg.Session)
	forms := sessions.NewFormStore(cfg.Session)

	cat, err := catalog.NewCatalog()
	s.Require().NoError(err)

	bookingHandler := api.NewBookingHandler(
		commands.NewBookingCommands(flows, cat, signer, clk, s.sleeper, cfg),
		queries.NewSessionQueries(flows, forms, clk),
	)
	checkoutHandler := api.NewCheckoutHandler(
		commands.NewCheckoutCommands(forms, signer, clk, s.sleeper, cfg),
		queries.NewSessionQueries(flows, forms, clk),
	)
	roomHandler := api.NewRoomHandler(cat)
	contentHandler := api.NewContentHandler(cat, commands.NewNewsletterCommands(s.sleeper, cfg))

	handler.NewRouter(s.router, cfg, bookingHandler, checkoutHandler, roomHandler, contentHandler)
}

func TestJourneySuite(t *testing.T) {
	suite.Run(t, new(JourneyTestSuite))
}

func (s *JourneyTestSuite) TestFullBookingJourney() {
	t := s.T()

	// landing content
	rec := httptest.PerformRequest(t, s.router, http.MethodGet, "/api/rooms", nil)
	var rooms []resdto.RoomResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &rooms)
	require.Len(t, rooms, 5)

	// open a booking flow
	rec = httptest.PerformRequest(t, s.router, http.MethodPost, "/api/booking/sessions", nil)
	var flow resdto.FlowResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &flow)
	base := "/api/booking/sessions/" + flow.ID.String()

	// pick a week-long stay and a bigger party
	rec = httptest.PerformRequest(t, s.router, http.MethodPatch, base+"/stay",
		map[string]string{"checkIn": "2026-10-01", "checkOut": "2026-10-08"})
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &flow)
	require.True(t, flow.DatesValid)

	for _, action := range []string{"add_adult", "add_child"} {
		rec = httptest.PerformRequest(t, s.router, http.MethodPatch, base+"/guests", map[string]string{"action": action})
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &flow)
	}
	require.Equal(t, "3 guests, 1 children", flow.GuestsLabel)

	// availability search
	rec = httptest.PerformRequest(t, s.router, http.MethodPost, base+"/search", nil)
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &flow)

	// a two-sleeper room cannot take the party of four
	rec = httptest.PerformRequest(t, s.router, http.MethodPut, base+"/room", map[string]string{"roomId": "deluxe"})
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &flow)
	require.False(t, flow.CanConfirm)

	rec = httptest.PerformRequest(t, s.router, http.MethodPost, base+"/confirm", nil)
	httptest.AssertErrorResponse(t, rec, http.StatusUnprocessableEntity, "")

	// the twin fits four
	rec = httptest.PerformRequest(t, s.router, http.MethodPut, base+"/room", map[string]string{"roomId": "twin"})
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &flow)
	require.True(t, flow.CanConfirm)

	rec = httptest.PerformRequest(t, s.router, http.MethodPost, base+"/confirm", nil)
	var confirmed resdto.ConfirmBookingResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &confirmed)
	require.NotEmpty(t, confirmed.HandoffToken)

	// hand off into checkout
	rec = httptest.PerformRequest(t, s.router, http.MethodPost, "/api/checkout/sessions",
		map[string]string{"handoffToken": confirmed.HandoffToken})
	var form resdto.CheckoutFormResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &form)
	require.Equal(t, "Twin Room", form.RoomName)
	require.Equal(t, 7, form.Quote.Nights)
	require.Equal(t, int64(139300), form.Quote.SubtotalCents)
	require.Equal(t, int64(16716), form.Quote.TaxesCents)
	require.Equal(t, int64(156016), form.Quote.TotalCents)

	// fill and submit
	checkoutBase := "/api/checkout/sessions/" + form.ID.String()
	for field, value := range builder.ValidFormValues() {
		rec = httptest.PerformRequest(t, s.router, http.MethodPatch, checkoutBase+"/fields",
			map[string]string{"field": field, "value": value})
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &form)
	}

	rec = httptest.PerformRequest(t, s.router, http.MethodPost, checkoutBase+"/submit", nil)
	var result resdto.SubmitResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &result)
	require.Equal(t, "HTL", result.Confirmation[:3])
	require.Equal(t, "confirmed", result.Form.State)
	require.Equal(t, result.Confirmation, result.Form.Confirmation)
}

func (s *JourneyTestSuite) TestDirectCheckoutFallback() {
	t := s.T()

	rec := httptest.PerformRequest(t, s.router, http.MethodPost, "/api/checkout/sessions", map[string]string{})
	var form resdto.CheckoutFormResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &form)
	require.Equal(t, "Luxury Suite", form.RoomName)
	require.Equal(t, "$598.00", form.Quote.Subtotal)
	require.Equal(t, "$71.76", form.Quote.Taxes)
	require.Equal(t, "$669.76", form.Quote.Total)
}

func (s *JourneyTestSuite) TestHealth() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/health", nil)
	require.Equal(s.T(), http.StatusOK, rec.Code)
}
