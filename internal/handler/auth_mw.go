package handler

import (
	"net/http"
	"os"
	"strings"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/service"
	"github.com/BloggingApp/blog-service/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) authMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		c.JSON(http.StatusUnauthorized, dto.NewBasicResponse(false, errNotAuthorized.Error()))
		c.Abort()
		return
	}

	accessToken := strings.Split(header, " ")[1]
	if accessToken == "" {
		c.JSON(http.StatusUnauthorized, dto.NewBasicResponse(false, errNotAuthorized.Error()))
		c.Abort()
		return
	}

	claims, err := utils.DecodeJWT(accessToken, []byte(os.Getenv("ACCESS_SECRET")))
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.NewBasicResponse(false, errNotAuthorized.Error()))
		c.Abort()
		return
	}

	idString, ok := claims["id"].(string)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewBasicResponse(false, errInvalidUserID.Error()))
		c.Abort()
		return
	}
	id, err := uuid.Parse(idString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.NewBasicResponse(false, errInvalidUserID.Error()))
		c.Abort()
		return
	}

	user, err := h.services.UserCache.CreateOrGet(c.Request.Context(), id, accessToken)
	if err != nil {
		if err == service.ErrNoUserRecord {
			c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, err.Error()))
		} else {
			c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, service.ErrInternal.Error()))
		}
		c.Abort()
		return
	}

	caller := model.Caller{User: *user}
	if orgID, ok := claims["org_id"].(string); ok && orgID != "" {
		caller.OrganizationID = &orgID
	}
	if orgName, ok := claims["org_name"].(string); ok && orgName != "" {
		caller.OrganizationName = &orgName
	}

	c.Set("caller", caller)

	c.Next()
}
