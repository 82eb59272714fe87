package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"replydesk/internal/application/message/usecases"
	"replydesk/internal/shared/id"
	"replydesk/internal/shared/logger"
	"replydesk/internal/shared/utils"
)

type MessageHandler struct {
	listMessagesUC *usecases.ListMessagesUseCase
	logger         logger.Interface
}

func NewMessageHandler(listMessagesUC *usecases.ListMessagesUseCase) *MessageHandler {
	return &MessageHandler{
		listMessagesUC: listMessagesUC,
		logger:         logger.NewLogger(),
	}
}

// ListMessages returns a client's inbound message history, newest first.
// Optional query filters: channel (email|sms|chat), replied (true|false).
func (h *MessageHandler) ListMessages(c *gin.Context) {
	clientSID, err := utils.ParseSIDParam(c, "id", id.PrefixClient, "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	p := utils.ParsePagination(c)

	var channel *string
	if val := c.Query("channel"); val != "" {
		channel = &val
	}

	var replied *bool
	if val := c.Query("replied"); val != "" {
		parsed, err := strconv.ParseBool(val)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "replied must be true or false")
			return
		}
		replied = &parsed
	}

	result, err := h.listMessagesUC.Execute(c.Request.Context(), usecases.ListMessagesCommand{
		ClientSID: clientSID,
		Channel:   channel,
		Replied:   replied,
		Page:      p.Page,
		PageSize:  p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"items":     result.Messages,
		"total":     result.Total,
		"unreplied": result.Unreplied,
		"page":      p.Page,
		"page_size": p.PageSize,
	})
}
