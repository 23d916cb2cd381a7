package api

import (
	"net/http"

	reqdto "luxe-escape/internal/handler/dto/request"
	resdto "luxe-escape/internal/handler/dto/response"
	"luxe-escape/internal/pkg/errs"
	"luxe-escape/internal/usecase/commands"
	"luxe-escape/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	sessionQueries  queries.SessionQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, sessionQueries queries.SessionQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		sessionQueries:  sessionQueries,
	}
}

// @Summary Start booking session
// @Description Open a new booking flow with default dates and guests
// @Tags booking
// @Produce json
// @Success 201 {object} resdto.FlowResponse
// @Router /booking/sessions [post]
func (h *BookingHandler) StartFlow(c *gin.Context) {
	flow, err := h.bookingCommands.StartFlow(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromFlowView(flow))
}

// @Summary Get booking session
// @Description Get the current state of a booking flow
// @Tags booking
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.FlowResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /booking/sessions/{id} [get]
func (h *BookingHandler) GetFlow(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	flow, err := h.sessionQueries.GetFlow(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking session not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromFlowView(flow))
}

// @Summary Set stay dates
// @Description Update check-in and/or check-out dates
// @Tags booking
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body reqdto.SetStayRequest true "Stay dates"
// @Success 200 {object} resdto.FlowResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /booking/sessions/{id}/stay [patch]
func (h *BookingHandler) SetStay(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req reqdto.SetStayRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	checkIn, checkOut, err := req.Parse()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	flow, err := h.bookingCommands.SetStay(c.Request.Context(), id, checkIn, checkOut)
	if err != nil {
		h.flowError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromFlowView(flow))
}

// @Summary Adjust guests
// @Description Apply one guest-counter action or toggle the guest panel
// @Tags booking
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body reqdto.AdjustGuestsRequest true "Guest action"
// @Success 200 {object} resdto.FlowResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /booking/sessions/{id}/guests [patch]
func (h *BookingHandler) AdjustGuests(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req reqdto.AdjustGuestsRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	action, valid := req.ToAction()
	if !valid {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown guest action",
		})
		return
	}

	flow, err := h.bookingCommands.AdjustGuests(c.Request.Context(), id, action)
	if err != nil {
		h.flowError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromFlowView(flow))
}

// @Summary Select room
// @Description Select a room from the booking grid
// @Tags booking
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body reqdto.SelectRoomRequest true "Room selection"
// @Success 200 {object} resdto.FlowResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /booking/sessions/{id}/room [put]
func (h *BookingHandler) SelectRoom(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req reqdto.SelectRoomRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	flow, err := h.bookingCommands.SelectRoom(c.Request.Context(), id, req.RoomID)
	if err != nil {
		h.flowError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromFlowView(flow))
}

// @Summary Search availability
// @Description Run the simulated availability search
// @Tags booking
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.FlowResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /booking/sessions/{id}/search [post]
func (h *BookingHandler) Search(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	flow, err := h.bookingCommands.Search(c.Request.Context(), id)
	if err != nil {
		h.flowError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromFlowView(flow))
}

// @Summary Confirm booking
// @Description Confirm the booking and hand off to checkout
// @Tags booking
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.ConfirmBookingResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /booking/sessions/{id}/confirm [post]
func (h *BookingHandler) Confirm(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	result, err := h.bookingCommands.Confirm(c.Request.Context(), id)
	if err != nil {
		h.flowError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromConfirmResult(result))
}

func (h *BookingHandler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid session ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

func (h *BookingHandler) flowError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrFlowNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking session not found",
		})
	case errs.Is(err, commands.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Room not found",
		})
	case errs.Is(err, commands.ErrActionInFlight):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Another request is already in progress",
		})
	case errs.Is(err, commands.ErrInvalidStayDates):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Please select valid dates",
		})
	case errs.Is(err, commands.ErrBookingPrecondition):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Please select a room that fits your party before confirming",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
