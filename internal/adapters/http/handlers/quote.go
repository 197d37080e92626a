package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/lifequote/internal/adapters/http/dto"
	"github.com/jsamuelsen/lifequote/internal/app"
)

// RootMessage is returned by GET /.
const RootMessage = "Life Insurance Comparison API running"

// QuoteHandler serves the quote and seed endpoints.
type QuoteHandler struct {
	quotes *app.QuoteService
	seeder app.Seeder
}

// NewQuoteHandler creates a quote handler.
func NewQuoteHandler(quotes *app.QuoteService, seeder app.Seeder) *QuoteHandler {
	return &QuoteHandler{
		quotes: quotes,
		seeder: seeder,
	}
}

// Root handles GET /.
func (h *QuoteHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MessageResponse{Message: RootMessage})
}

// Quote handles POST /quote.
// Returns every plan's premium for the applicant, cheapest first.
//
// @Summary Quote a life insurance applicant
// @Accept json
// @Produce json
// @Param request body dto.QuoteRequest true "Applicant"
// @Success 200 {array} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /quote [post]
func (h *QuoteHandler) Quote(c *gin.Context) {
	var body dto.QuoteRequest

	if err := dto.BindAndValidate(c, &body); err != nil {
		respondBindError(c, err)
		return
	}

	quotes, err := h.quotes.Quote(c.Request.Context(), body.ToDomain())
	if err != nil {
		RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponses(quotes))
}

// Seed handles POST /seed.
// Seeds the demo catalog if it is empty and reports the counts.
//
// @Summary Seed the demo catalog
// @Produce json
// @Success 200 {object} dto.SeedResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /seed [post]
func (h *QuoteHandler) Seed(c *gin.Context) {
	result, err := h.seeder.Seed(c.Request.Context())
	if err != nil {
		RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSeedResponse(result))
}

// RegisterQuoteRoutes registers the public routes on rg.
func (h *QuoteHandler) RegisterQuoteRoutes(rg gin.IRoutes) {
	rg.GET("/", h.Root)
	rg.POST("/quote", h.Quote)
	rg.POST("/seed", h.Seed)
}

func respondBindError(c *gin.Context, err error) {
	if dto.IsValidationError(err) {
		RespondWithValidationErrors(c, dto.ValidationErrors(err))
		return
	}

	if details := dto.BindingDetails(err); details != nil {
		RespondWithValidationErrors(c, details)
		return
	}

	message := "request body must be a JSON object"

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		message = "request body too large"
	}

	RespondWithErrorCode(c, dto.ErrorCodeBadRequest, message)
}
