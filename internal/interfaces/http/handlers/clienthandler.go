package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"replydesk/internal/application/client/usecases"
	"replydesk/internal/shared/authorization"
	"replydesk/internal/shared/constants"
	"replydesk/internal/shared/id"
	"replydesk/internal/shared/logger"
	"replydesk/internal/shared/utils"
)

type ClientHandler struct {
	createClientUC        *usecases.CreateClientUseCase
	updateClientUC        *usecases.UpdateClientUseCase
	updateClientProfileUC *usecases.UpdateClientProfileUseCase
	deleteClientUC        *usecases.DeleteClientUseCase
	getClientUC           *usecases.GetClientUseCase
	listClientsUC         *usecases.ListClientsUseCase
	logger                logger.Interface
}

func NewClientHandler(
	createClientUC *usecases.CreateClientUseCase,
	updateClientUC *usecases.UpdateClientUseCase,
	updateClientProfileUC *usecases.UpdateClientProfileUseCase,
	deleteClientUC *usecases.DeleteClientUseCase,
	getClientUC *usecases.GetClientUseCase,
	listClientsUC *usecases.ListClientsUseCase,
) *ClientHandler {
	return &ClientHandler{
		createClientUC:        createClientUC,
		updateClientUC:        updateClientUC,
		updateClientProfileUC: updateClientProfileUC,
		deleteClientUC:        deleteClientUC,
		getClientUC:           getClientUC,
		listClientsUC:         listClientsUC,
		logger:                logger.NewLogger(),
	}
}

type CreateClientRequest struct {
	BusinessName string `json:"business_name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
	PlanID       string `json:"plan_id"`
}

type UpdateClientRequest struct {
	BusinessName *string `json:"business_name"`
	Email        *string `json:"email"`
	PlanID       *string `json:"plan_id"`
	IsActive     *bool   `json:"is_active"`
}

type UpdateClientProfileRequest struct {
	BusinessName string `json:"business_name" binding:"required"`
}

func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create client", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.createClientUC.Execute(c.Request.Context(), usecases.CreateClientCommand{
		BusinessName: req.BusinessName,
		Email:        req.Email,
		Password:     req.Password,
		PlanSID:      req.PlanID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "client created successfully")
}

// UpdateClient dispatches by caller role: admins may change any field,
// client users only their own business name.
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixClient, "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	role := authorization.UserRole(c.GetString(constants.ContextKeyUserRole))
	if !role.IsAdmin() {
		var req UpdateClientProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "business_name is required")
			return
		}

		result, err := h.updateClientProfileUC.Execute(c.Request.Context(), usecases.UpdateClientProfileCommand{
			SID:          sid,
			BusinessName: req.BusinessName,
		})
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		utils.SuccessResponse(c, http.StatusOK, "profile updated successfully", result)
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.updateClientUC.Execute(c.Request.Context(), usecases.UpdateClientCommand{
		SID:          sid,
		BusinessName: req.BusinessName,
		Email:        req.Email,
		PlanSID:      req.PlanID,
		IsActive:     req.IsActive,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "client updated successfully", result)
}

func (h *ClientHandler) DeleteClient(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixClient, "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteClientUC.Execute(c.Request.Context(), usecases.DeleteClientCommand{SID: sid}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *ClientHandler) GetClient(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixClient, "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getClientUC.Execute(c.Request.Context(), sid)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ClientHandler) ListClients(c *gin.Context) {
	p := utils.ParsePagination(c)

	var isActive *bool
	if val := c.Query("is_active"); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			isActive = &parsed
		}
	}

	result, err := h.listClientsUC.Execute(c.Request.Context(), usecases.ListClientsCommand{
		PlanSID:  c.Query("plan_id"),
		IsActive: isActive,
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Clients, result.Total, p.Page, p.PageSize)
}
