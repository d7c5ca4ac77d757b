package handler

import (
	"errors"
	"net/http"

	"jobtrail/internal/middleware"
	"jobtrail/internal/model"
	"jobtrail/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// PostingHandler handles posting related requests
type PostingHandler struct {
	service service.PostingService
}

// NewPostingHandler creates a new PostingHandler
func NewPostingHandler(s service.PostingService) *PostingHandler {
	return &PostingHandler{service: s}
}

// Helper to get the authenticated owner name from context
func getAuthUserName(c *gin.Context) (string, error) {
	nameVal, exists := c.Get(middleware.AuthUserNameKey)
	if !exists {
		return "", errors.New("user not found in context")
	}
	name, ok := nameVal.(string)
	if !ok || name == "" {
		return "", errors.New("invalid user in context")
	}
	return name, nil
}

func (h *PostingHandler) CreatePosting(c *gin.Context) {
	owner, err := getAuthUserName(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req model.CreatePostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	posting, err := h.service.CreatePosting(c.Request.Context(), owner, req)
	if err != nil {
		log.Error().Err(err).Msg("error creating posting")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create posting"})
		return
	}
	c.JSON(http.StatusCreated, posting)
}

func (h *PostingHandler) GetMyPostings(c *gin.Context) {
	owner, err := getAuthUserName(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	postings, err := h.service.GetUserPostings(c.Request.Context(), owner)
	if err != nil {
		log.Error().Err(err).Msg("error getting user postings")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve postings"})
		return
	}
	c.JSON(http.StatusOK, postings)
}

func (h *PostingHandler) GetPostingByID(c *gin.Context) {
	owner, err := getAuthUserName(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	posting, err := h.service.GetPostingByID(c.Request.Context(), c.Param("id"), owner)
	if err != nil {
		if errors.Is(err, service.ErrPostingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			log.Error().Err(err).Msg("error getting posting by ID")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve posting"})
		}
		return
	}
	c.JSON(http.StatusOK, posting)
}

func (h *PostingHandler) UpdatePosting(c *gin.Context) {
	owner, err := getAuthUserName(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req model.UpdatePostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	posting, err := h.service.UpdatePosting(c.Request.Context(), c.Param("id"), owner, req)
	if err != nil {
		if errors.Is(err, service.ErrPostingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			log.Error().Err(err).Msg("error updating posting")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update posting"})
		}
		return
	}
	c.JSON(http.StatusOK, posting)
}

func (h *PostingHandler) DeletePosting(c *gin.Context) {
	owner, err := getAuthUserName(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.DeletePosting(c.Request.Context(), c.Param("id"), owner); err != nil {
		if errors.Is(err, service.ErrPostingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			log.Error().Err(err).Msg("error deleting posting")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete posting"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RegisterPostingRoutes registers posting routes behind the auth middleware
func (h *PostingHandler) RegisterPostingRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	postingRoutes := rg.Group("/postings")
	postingRoutes.Use(authMW)
	{
		postingRoutes.POST("", h.CreatePosting)
		postingRoutes.GET("/user", h.GetMyPostings)
		postingRoutes.GET("/:id", h.GetPostingByID)
		postingRoutes.PUT("/:id", h.UpdatePosting)
		postingRoutes.DELETE("/:id", h.DeletePosting)
	}
}
