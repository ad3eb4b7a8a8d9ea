package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/BloggingApp/blog-service/internal/service"
	"github.com/gin-gonic/gin"
)

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	var validationErr *service.ValidationError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, dto.NewValidationResponse(validationErr.Violations))
	case errors.Is(err, service.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, dto.NewBasicResponse(false, err.Error()))
	case errors.Is(err, service.ErrNoUserRecord):
		c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, err.Error()))
	case errors.Is(err, service.ErrBlogNotFound):
		c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, err.Error()))
	case errors.Is(err, service.ErrBlogTitleTaken):
		c.JSON(http.StatusConflict, dto.NewBasicResponse(false, err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, service.ErrInternal.Error()))
	}
}

func (h *Handler) blogsCreate(c *gin.Context) {
	caller := h.getCallerFromRequest(c)

	var input dto.CreateBlogRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	createdBlog, err := h.services.Blog.Create(c.Request.Context(), caller, input)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewCreateBlogResponse(createdBlog))
}

func (h *Handler) blogsGetMy(c *gin.Context) {
	caller := h.getCallerFromRequest(c)

	limit, err0 := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, err1 := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err0 != nil || err1 != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errLimitAndOffsetMustBeInt.Error()))
		return
	}

	page, err := h.services.Blog.FindOwned(c.Request.Context(), caller, limit, offset)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *Handler) blogsUpdate(c *gin.Context) {
	caller := h.getCallerFromRequest(c)

	var input dto.UpdateBlogRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	updatedBlog, err := h.services.Blog.Update(c.Request.Context(), caller, input)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UpdateBlogResponse{
		Ok: true,
		Message: "Blog updated successfully",
		Blog: *updatedBlog,
	})
}

func (h *Handler) blogsGetPublic(c *gin.Context) {
	organizationID := strings.TrimSpace(c.Param("organizationID"))

	blogs, err := h.services.Blog.FindPublic(c.Request.Context(), organizationID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"blogs": blogs})
}
