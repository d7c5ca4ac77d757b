package handler

import (
	"errors"
	"net/http"

	"jobtrail/internal/model"
	"jobtrail/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ContactHandler handles contact related requests
type ContactHandler struct {
	service service.ContactService
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(s service.ContactService) *ContactHandler {
	return &ContactHandler{service: s}
}

func (h *ContactHandler) CreateContact(c *gin.Context) {
	owner, err := getAuthUserName(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req model.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	contact, err := h.service.CreateContact(c.Request.Context(), owner, req)
	if err != nil {
		log.Error().Err(err).Msg("error creating contact")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create contact"})
		return
	}
	c.JSON(http.StatusCreated, contact)
}

func (h *ContactHandler) GetMyContacts(c *gin.Context) {
	owner, err := getAuthUserName(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	contacts, err := h.service.GetUserContacts(c.Request.Context(), owner)
	if err != nil {
		log.Error().Err(err).Msg("error getting user contacts")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve contacts"})
		return
	}
	c.JSON(http.StatusOK, contacts)
}

func (h *ContactHandler) GetContactByID(c *gin.Context) {
	owner, err := getAuthUserName(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	contact, err := h.service.GetContactByID(c.Request.Context(), c.Param("id"), owner)
	if err != nil {
		if errors.Is(err, service.ErrContactNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			log.Error().Err(err).Msg("error getting contact by ID")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve contact"})
		}
		return
	}
	c.JSON(http.StatusOK, contact)
}

func (h *ContactHandler) UpdateContact(c *gin.Context) {
	owner, err := getAuthUserName(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req model.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	contact, err := h.service.UpdateContact(c.Request.Context(), c.Param("id"), owner, req)
	if err != nil {
		if errors.Is(err, service.ErrContactNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			log.Error().Err(err).Msg("error updating contact")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update contact"})
		}
		return
	}
	c.JSON(http.StatusOK, contact)
}

func (h *ContactHandler) DeleteContact(c *gin.Context) {
	owner, err := getAuthUserName(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.DeleteContact(c.Request.Context(), c.Param("id"), owner); err != nil {
		if errors.Is(err, service.ErrContactNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			log.Error().Err(err).Msg("error deleting contact")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete contact"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RegisterContactRoutes registers contact routes behind the auth middleware
func (h *ContactHandler) RegisterContactRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	contactRoutes := rg.Group("/contacts")
	contactRoutes.Use(authMW)
	{
		contactRoutes.POST("", h.CreateContact)
		contactRoutes.GET("/user", h.GetMyContacts)
		contactRoutes.GET("/:id", h.GetContactByID)
		contactRoutes.PUT("/:id", h.UpdateContact)
		contactRoutes.DELETE("/:id", h.DeleteContact)
	}
}
