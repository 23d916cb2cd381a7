package api

import (
	"net/http"

	reqdto "luxe-escape/internal/handler/dto/request"
	resdto "luxe-escape/internal/handler/dto/response"
	"luxe-escape/internal/handler/httperr"
	"luxe-escape/internal/pkg/errs"
	"luxe-escape/internal/usecase/commands"
	"luxe-escape/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	contentQueries     queries.ContentQueries
	newsletterCommands commands.NewsletterCommands
}

func NewContentHandler(contentQueries queries.ContentQueries, newsletterCommands commands.NewsletterCommands) *ContentHandler {
	return &ContentHandler{
		contentQueries:     contentQueries,
		newsletterCommands: newsletterCommands,
	}
}

// @Summary Get hero content
// @Description Get the landing hero video and its poster fallback
// @Tags content
// @Produce json
// @Success 200 {object} resdto.HeroResponse
// @Router /content/hero [get]
func (h *ContentHandler) Hero(c *gin.Context) {
	hero, err := h.contentQueries.Hero(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromHeroView(hero))
}

// @Summary Get restaurant content
// @Description Get the restaurant promo copy and carousel slides
// @Tags content
// @Produce json
// @Success 200 {object} resdto.RestaurantResponse
// @Router /content/restaurant [get]
func (h *ContentHandler) Restaurant(c *gin.Context) {
	restaurant, err := h.contentQueries.Restaurant(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRestaurantView(restaurant))
}

// @Summary Subscribe to newsletter
// @Description Subscribe an email address to the newsletter
// @Tags content
// @Accept json
// @Produce json
// @Param request body reqdto.SubscribeRequest true "Subscription request"
// @Success 200 {object} resdto.SubscribeResponse
// @Failure 400 {object} httperr.Response
// @Router /newsletter [post]
func (h *ContentHandler) Subscribe(c *gin.Context) {
	var req reqdto.SubscribeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	if err := h.newsletterCommands.Subscribe(c.Request.Context(), req.Email); err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidEmail):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Please enter a valid email address", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.SubscribeResponse{Message: "Thank you for subscribing"})
}
