package handlers

import (
	"net/http"

	"law_office_app_go/db"
	"law_office_app_go/models"
	"law_office_app_go/services"

	"github.com/labstack/echo/v4"
)

// clientRequest is the typed contract for client create requests
type clientRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// clientUpdateRequest carries only the fields present in the request body
type clientUpdateRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
}

// GetClients returns all clients, newest first
func GetClients(c echo.Context) error {
	var clients []models.Client
	if err := db.DB.Order("created_at DESC").Find(&clients).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Failed to fetch clients",
		})
	}
	return c.JSON(http.StatusOK, clients)
}

// CreateClient creates a new client
func CreateClient(c echo.Context) error {
	req := new(clientRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": "Invalid request body",
		})
	}

	client := &models.Client{
		Name:    services.SanitizeText(req.Name),
		Phone:   services.SanitizeText(req.Phone),
		Email:   services.SanitizeText(req.Email),
		Address: services.SanitizeText(req.Address),
	}

	if err := client.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": err.Error(),
		})
	}

	if err := db.DB.Create(client).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Failed to create client",
		})
	}

	return c.JSON(http.StatusCreated, client)
}

// UpdateClient updates an existing client by ID
func UpdateClient(c echo.Context) error {
	id := c.Param("id")

	var client models.Client
	if err := db.DB.First(&client, "id = ?", id).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"message": "Client not found",
		})
	}

	req := new(clientUpdateRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": "Invalid request body",
		})
	}

	if req.Name != nil {
		client.Name = services.SanitizeText(*req.Name)
	}
	if req.Phone != nil {
		client.Phone = services.SanitizeText(*req.Phone)
	}
	if req.Email != nil {
		client.Email = services.SanitizeText(*req.Email)
	}
	if req.Address != nil {
		client.Address = services.SanitizeText(*req.Address)
	}

	if err := client.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": err.Error(),
		})
	}

	if err := db.DB.Save(&client).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Failed to update client",
		})
	}

	return c.JSON(http.StatusOK, client)
}

// DeleteClient deletes a client by ID.
// Cases referencing this client are left untouched.
func DeleteClient(c echo.Context) error {
	id := c.Param("id")

	var client models.Client
	if err := db.DB.First(&client, "id = ?", id).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"message": "Client not found",
		})
	}

	if err := db.DB.Delete(&client).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Failed to delete client",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Client deleted successfully",
	})
}
