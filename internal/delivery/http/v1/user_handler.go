package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
)

type UserHandler struct {
	userUC domain.UserUsecase
}

// NewUserHandler registers the user routes. Lookup by id is public;
// listing and self-service mutations require authentication.
func NewUserHandler(public *gin.RouterGroup, protected *gin.RouterGroup, userUC domain.UserUsecase) {
	handler := &UserHandler{userUC: userUC}

	public.GET("/users/:id", handler.GetPublic)

	protected.GET("/users", handler.List)
	protected.PUT("/users/:id", handler.Update)
	protected.DELETE("/users/:id", handler.Deactivate)
}

// List godoc
// @Summary      List active users
// @Description  Public-safe projections of all active users
// @Tags         users
// @Produce      json
// @Success      200  {array}   domain.PublicUser
// @Failure      401  {object}  response.ErrorBody
// @Router       /users [get]
// @Security     BearerAuth
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userUC.ListActive(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Failed to get users")
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetPublic godoc
// @Summary      Get public user info
// @Description  Public projection of an active user. Deactivated or unknown ids answer 404.
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  response.ErrorBody
// @Router       /users/{id} [get]
func (h *UserHandler) GetPublic(c *gin.Context) {
	id, err := userID(c)
	if err != nil {
		c.Error(err)
		return
	}

	user, err := h.userUC.GetPublic(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Failed to get user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Update godoc
// @Summary      Update own profile
// @Description  Update first/last name on the caller's own record
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id      path      int                   true  "User ID"
// @Param        update  body      domain.ProfileUpdate  true  "Fields to update"
// @Success      200     {object}  map[string]interface{}
// @Failure      403     {object}  response.ErrorBody
// @Failure      404     {object}  response.ErrorBody
// @Failure      500     {object}  response.ErrorBody
// @Router       /users/{id} [put]
// @Security     BearerAuth
func (h *UserHandler) Update(c *gin.Context) {
	id, err := userID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req domain.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	callerID := c.GetInt64(string(domain.KeyUserID))
	user, err := h.userUC.UpdateProfile(c.Request.Context(), callerID, id, &req)
	if err != nil {
		h.fail(c, err, "Failed to update user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Deactivate godoc
// @Summary      Deactivate own account
// @Description  Soft-deletes the caller's account; the record is retained
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  response.ErrorBody
// @Failure      500  {object}  response.ErrorBody
// @Router       /users/{id} [delete]
// @Security     BearerAuth
func (h *UserHandler) Deactivate(c *gin.Context) {
	id, err := userID(c)
	if err != nil {
		c.Error(err)
		return
	}

	callerID := c.GetInt64(string(domain.KeyUserID))
	if err := h.userUC.Deactivate(c.Request.Context(), callerID, id); err != nil {
		h.fail(c, err, "Failed to deactivate account")
		return
	}

	response.Message(c, http.StatusOK, "Account deactivated successfully")
}

func (h *UserHandler) fail(c *gin.Context, err error, fallback string) {
	if apperror.IsClientError(err) {
		c.Error(err)
		return
	}
	c.Error(apperror.New(http.StatusInternalServerError, fallback, err))
}

func userID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperror.BadRequest("Invalid ID format")
	}
	return id, nil
}
