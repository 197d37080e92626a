package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/lifequote/internal/adapters/http/dto"
	"github.com/jsamuelsen/lifequote/internal/app"
	"github.com/jsamuelsen/lifequote/internal/domain"
	"github.com/jsamuelsen/lifequote/internal/platform/logging"
)

// MapDomainError picks the status and envelope for err. Deadlines are
// checked before store failures because the store wraps the context error.
// Anything unrecognised is a 500 that leaks no detail.
func MapDomainError(err error) (int, *dto.ErrorResponse) {
	var (
		code    string
		message string
	)

	switch {
	case err == nil:
		return http.StatusOK, nil
	case domain.IsValidation(err):
		return http.StatusBadRequest, validationEnvelope(err)
	case errors.Is(err, context.DeadlineExceeded):
		code, message = dto.ErrorCodeTimeout, "request timeout exceeded"
	case domain.IsUnavailable(err):
		code, message = dto.ErrorCodeUnavailable, "document store unavailable"
	case domain.IsInvalidRecord(err):
		code, message = dto.ErrorCodeDataIntegrity, "the plan catalog contains an invalid record"
	default:
		code, message = dto.ErrorCodeInternal, "an internal error occurred"
	}

	return dto.HTTPStatusFromCode(code), dto.NewErrorResponse(code, message)
}

func validationEnvelope(err error) *dto.ErrorResponse {
	var fieldErr *domain.ValidationError
	if errors.As(err, &fieldErr) && fieldErr.Field != "" {
		return dto.NewErrorResponseWithDetails(dto.ErrorCodeValidation, fieldErr.Error(),
			map[string]string{fieldErr.Field: fieldErr.Message})
	}

	return dto.NewErrorResponse(dto.ErrorCodeValidation, err.Error())
}

// RespondWithError writes err as an envelope. 5xx responses are logged
// along with the pipeline stage that produced them.
func RespondWithError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	status, body := MapDomainError(err)
	body.WithTraceID(dto.TraceID(ctx))

	if status >= http.StatusInternalServerError {
		logger := logging.FromContext(ctx).With(slog.Int("status", status), slog.String("trace_id", body.TraceID))
		if stage, ok := app.FailedStage(err); ok {
			logger = logger.With(slog.String("stage", string(stage)))
		}

		logger.ErrorContext(ctx, "request failed", slog.Any("error", err))
	}

	c.JSON(status, body)
}

// RespondWithErrorCode writes an envelope for failures found before the
// service is called, such as unknown routes.
func RespondWithErrorCode(c *gin.Context, code, message string) {
	c.JSON(dto.HTTPStatusFromCode(code),
		dto.NewErrorResponse(code, message).WithTraceID(dto.TraceID(c.Request.Context())))
}

// RespondWithValidationErrors writes a 400 listing each rejected field.
func RespondWithValidationErrors(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest,
		dto.NewErrorResponseWithDetails(dto.ErrorCodeValidation, "request validation failed", fields).
			WithTraceID(dto.TraceID(c.Request.Context())))
}
