package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-demo/forum/internal/dto/request"
	"github.com/go-demo/forum/internal/dto/response"
	"github.com/go-demo/forum/internal/middleware"
	"github.com/go-demo/forum/internal/pkg/utils"
	"github.com/go-demo/forum/internal/service"
)

type MessageHandler struct {
	messageService *service.MessageService
}

func NewMessageHandler(messageService *service.MessageService) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
	}
}

// Post godoc
// @Summary 發送訊息
// @Description 在討論室發送訊息，發送後自動成為參與者
// @Tags 訊息
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "討論室 ID"
// @Param request body request.PostMessageRequest true "訊息內容"
// @Success 201 {object} response.Response{data=response.MessageResponse}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/rooms/{id}/messages [post]
func (h *MessageHandler) Post(c *gin.Context) {
	roomID := c.Param("id")
	userID := middleware.GetUserID(c)

	if !utils.ValidateUUID(roomID) {
		response.BadRequest(c, "無效的討論室 ID")
		return
	}

	var req request.PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "請求格式錯誤")
		return
	}

	v := utils.NewValidator()
	v.ValidateMessageBody("body", req.Body)
	if v.HasErrors() {
		response.ValidationError(c, v.Errors())
		return
	}

	msg, err := h.messageService.Post(c.Request.Context(), &service.PostInput{
		RoomID: roomID,
		UserID: userID,
		Body:   req.Body,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, &response.MessageResponse{
		ID:        msg.ID,
		RoomID:    msg.RoomID,
		UserID:    msg.UserID,
		Username:  middleware.GetUsername(c),
		Body:      msg.Body,
		CreatedAt: msg.CreatedAt.Format(time.RFC3339),
	})
}

// List godoc
// @Summary 列出討論室訊息
// @Description 列出討論室的訊息，由新到舊
// @Tags 訊息
// @Produce json
// @Param id path string true "討論室 ID"
// @Param page query int false "頁碼"
// @Param limit query int false "每頁筆數"
// @Success 200 {object} response.Response{data=response.MessageListResponse}
// @Failure 404 {object} response.Response
// @Router /api/v1/rooms/{id}/messages [get]
func (h *MessageHandler) List(c *gin.Context) {
	roomID := c.Param("id")

	if !utils.ValidateUUID(roomID) {
		response.BadRequest(c, "無效的討論室 ID")
		return
	}

	var page request.PaginationRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, "分頁參數錯誤")
		return
	}

	messages, err := h.messageService.ListByRoom(c.Request.Context(), roomID, page.Limit+1, page.Offset())
	if err != nil {
		response.Error(c, err)
		return
	}

	hasMore := len(messages) > page.Limit
	if hasMore {
		messages = messages[:page.Limit]
	}

	response.Success(c, response.NewMessageListResponse(messages, hasMore))
}

// Delete godoc
// @Summary 刪除訊息
// @Description 刪除訊息，僅作者本人可操作
// @Tags 訊息
// @Produce json
// @Security BearerAuth
// @Param id path string true "訊息 ID"
// @Success 204
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/messages/{id} [delete]
func (h *MessageHandler) Delete(c *gin.Context) {
	messageID := c.Param("id")
	userID := middleware.GetUserID(c)

	if !utils.ValidateUUID(messageID) {
		response.BadRequest(c, "無效的訊息 ID")
		return
	}

	if err := h.messageService.Delete(c.Request.Context(), messageID, userID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
