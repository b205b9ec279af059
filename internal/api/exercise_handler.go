package api

import (
	"alcyxob/exercise-tracker/internal/service"
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler serves exercise creation and log queries.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
	logService      service.LogService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService, logService service.LogService) *ExerciseHandler {
	return &ExerciseHandler{
		exerciseService: exerciseService,
		logService:      logService,
	}
}

// --- DTOs for API (Data Transfer Objects) ---

// looseString accepts a JSON string or a bare JSON number, so clients may
// send duration either way. Validation happens in the service.
type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = looseString(str)
		return nil
	}
	*s = looseString(data)
	return nil
}

// UnmarshalParam lets form binding fill the field.
func (s *looseString) UnmarshalParam(param string) error {
	*s = looseString(param)
	return nil
}

// CreateExerciseRequest is accepted as JSON or as a urlencoded form.
type CreateExerciseRequest struct {
	Description string      `json:"description" form:"description"`
	Duration    looseString `json:"duration" form:"duration"`
	Date        string      `json:"date" form:"date"`
}

// ExerciseResponse echoes the stored exercise next to its owner.
type ExerciseResponse struct {
	ID          string `json:"id"` // owner's user id
	Username    string `json:"username"`
	Duration    int    `json:"duration"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// LogQueryParams are the optional filters of GET .../logs.
type LogQueryParams struct {
	Limit string `form:"limit"`
	From  string `form:"from"`
	To    string `form:"to"`
}

// CreateExercise handles POST /api/users/:id/exercises.
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	var req CreateExerciseRequest
	if err := c.ShouldBind(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	logged, err := h.exerciseService.CreateExercise(
		c.Request.Context(),
		userID,
		req.Description,
		string(req.Duration),
		req.Date,
	)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ExerciseResponse{
		ID:          logged.User.ID.Hex(),
		Username:    logged.User.Username,
		Duration:    logged.Exercise.Duration,
		Description: logged.Exercise.Description,
		Date:        logged.Exercise.Date,
	})
}

// GetLog handles GET /api/users/:id/logs?limit=&from=&to=.
func (h *ExerciseHandler) GetLog(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	var params LogQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	log, err := h.logService.GetLog(c.Request.Context(), userID, service.LogQuery{
		Limit: params.Limit,
		From:  params.From,
		To:    params.To,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, log)
}
