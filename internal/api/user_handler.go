package api

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserHandler holds the user service dependency.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUserRequest is accepted as JSON or as a urlencoded form.
type CreateUserRequest struct {
	Username string `json:"username" form:"username"`
}

// UserResponse is the DTO for returning user details.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// MapUserToResponse converts a domain.User to UserResponse DTO.
func MapUserToResponse(u *domain.User) UserResponse {
	if u == nil {
		return UserResponse{}
	}
	return UserResponse{ID: u.ID.Hex(), Username: u.Username}
}

// MapUsersToResponse converts a slice of domain.User to a slice of UserResponse DTO.
func MapUsersToResponse(users []domain.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = MapUserToResponse(&users[i])
	}
	return responses
}

// CreateUser handles POST /api/users.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req.Username)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// ListUsers handles GET /api/users.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, MapUsersToResponse(users))
}

// parseUserID reads the :id path parameter. A malformed id aborts with 400.
func parseUserID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid user id")
		return primitive.NilObjectID, false
	}
	return id, true
}
