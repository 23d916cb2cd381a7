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

type CheckoutHandler struct {
	checkoutCommands commands.CheckoutCommands
	sessionQueries   queries.SessionQueries
}

func NewCheckoutHandler(checkoutCommands commands.CheckoutCommands, sessionQueries queries.SessionQueries) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutCommands: checkoutCommands,
		sessionQueries:   sessionQueries,
	}
}

// @Summary Start checkout session
// @Description Open a checkout from a booking handoff token; without a valid token the default placeholder booking is used
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.StartCheckoutRequest true "Handoff token"
// @Success 201 {object} resdto.CheckoutFormResponse
// @Failure 400 {object} map[string]string
// @Router /checkout/sessions [post]
func (h *CheckoutHandler) StartSession(c *gin.Context) {
	var req reqdto.StartCheckoutRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	form, err := h.checkoutCommands.StartSession(c.Request.Context(), req.HandoffToken)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCheckoutFormView(form))
}

// @Summary Get checkout session
// @Description Get the current state of a checkout form
// @Tags checkout
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.CheckoutFormResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /checkout/sessions/{id} [get]
func (h *CheckoutHandler) GetSession(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	form, err := h.sessionQueries.GetCheckoutForm(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Checkout session not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCheckoutFormView(form))
}

// @Summary Edit form field
// @Description Apply a keystroke to one form field, with live formatting for card number and expiry date
// @Tags checkout
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body reqdto.EditFieldRequest true "Field edit"
// @Success 200 {object} resdto.CheckoutFormResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /checkout/sessions/{id}/fields [patch]
func (h *CheckoutHandler) EditField(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req reqdto.EditFieldRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	form, err := h.checkoutCommands.EditField(c.Request.Context(), id, req.Field, req.Value)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrFormNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Checkout session not found",
			})
		case errs.Is(err, commands.ErrUnknownField):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unknown form field",
			})
		case errs.Is(err, commands.ErrSubmissionInFlight):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Payment is already being processed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCheckoutFormView(form))
}

// @Summary Submit payment
// @Description Validate all fields and run the simulated payment; on validation failure the form with per-field errors is returned
// @Tags checkout
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.SubmitResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} resdto.CheckoutFormResponse
// @Router /checkout/sessions/{id}/submit [post]
func (h *CheckoutHandler) Submit(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	result, err := h.checkoutCommands.Submit(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrFormNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Checkout session not found",
			})
		case errs.Is(err, commands.ErrSubmissionInFlight):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Payment is already being processed",
			})
		case errs.Is(err, commands.ErrValidationFailed):
			// Rejected forms keep their field errors; re-read so the client
			// can render them inline.
			form, queryErr := h.sessionQueries.GetCheckoutForm(c.Request.Context(), id)
			if queryErr != nil {
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				return
			}
			c.JSON(http.StatusUnprocessableEntity, resdto.FromCheckoutFormView(form))
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSubmitResult(result))
}

func (h *CheckoutHandler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid session ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}
