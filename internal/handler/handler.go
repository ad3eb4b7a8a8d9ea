package handler

import (
	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

type Handler struct {
	services *service.Service
}

func New(services *service.Service) *Handler {
	return &Handler{
		services: services,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{viper.GetString("client.origin")},
		AllowMethods: []string{"POST", "GET", "PATCH"},
		AllowHeaders: []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	api := r.Group("/api")
	{
		blogs := api.Group("/blogs")
		{
			blogs.POST("", h.authMiddleware, h.blogsCreate)
			blogs.GET("", h.authMiddleware, h.blogsGetMy)
			blogs.PATCH("", h.authMiddleware, h.blogsUpdate)

			blogs.GET("/public/:organizationID", h.blogsGetPublic)
		}
	}

	return r
}

func (h *Handler) getCallerFromRequest(c *gin.Context) *model.Caller {
	callerReq, _ := c.Get("caller")

	caller, ok := callerReq.(model.Caller)
	if !ok {
		return nil
	}

	return &caller
}
