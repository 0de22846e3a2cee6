package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse is the uniform wire shape for every handler. Clients key off
// Success; Error carries a user-facing message only.
type APIResponse struct {
	Success bool        `json:"success"`
	Code    int         `json:"code"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	id, _ := c.Get("trace_id")
	if s, ok := id.(string); ok {
		return s
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Success: false,
		Code:    code,
		Error:   message,
		TraceID: traceID(c),
	})
}

// HandleServiceError converts service-layer sentinels into HTTP responses.
// Generation and parsing failures never crash the client; they degrade to a
// retryable message while the previous itinerary state stays intact.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidTripRequest):
		RespondError(c, http.StatusBadRequest, "Destination, a positive day count and at least one interest are required")
	case errors.Is(err, ErrMissingAPIKey):
		RespondError(c, http.StatusInternalServerError, "GEMINI_API_KEY is not configured. Get your free API key at https://aistudio.google.com/app/apikey")
	case errors.Is(err, ErrNoBackendAvailable):
		log.Printf("Backend selection failed: %v", err)
		RespondError(c, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, ErrBackendTimeout):
		RespondError(c, http.StatusGatewayTimeout, "The travel planner took too long to respond. Please try again.")
	case errors.Is(err, ErrEmptyResponse), errors.Is(err, ErrMalformedResponse), errors.Is(err, ErrUnrecognizedShape):
		var malformed *MalformedResponseError
		if errors.As(err, &malformed) {
			log.Printf("Malformed generative response: %v, raw payload: %s", malformed.Err, malformed.Raw)
		} else {
			log.Printf("Unusable generative response: %v", err)
		}
		RespondError(c, http.StatusBadGateway, "The travel planner returned an unusable answer. Please try again.")
	case errors.Is(err, ErrDayNotFound):
		RespondError(c, http.StatusUnprocessableEntity, "That day does not exist in the current itinerary")
	case errors.Is(err, ErrIncompleteRegeneration):
		RespondError(c, http.StatusUnprocessableEntity, "The suggestion was incomplete, your itinerary was left unchanged")
	case errors.Is(err, ErrRegenerationInFlight):
		RespondError(c, http.StatusConflict, "A suggestion for this section is already being generated")
	case errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, "Account not found")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "An account with this email already exists")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrWishlistItemNotFound):
		RespondError(c, http.StatusNotFound, "Wishlist item not found")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
