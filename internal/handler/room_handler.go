package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/go-demo/forum/internal/dto/request"
	"github.com/go-demo/forum/internal/dto/response"
	"github.com/go-demo/forum/internal/middleware"
	"github.com/go-demo/forum/internal/pkg/utils"
	"github.com/go-demo/forum/internal/service"
)

// defaultPageLimit is used when a handler needs a page size but the request
// carries none.
const defaultPageLimit = 20

type RoomHandler struct {
	roomService *service.RoomService
}

func NewRoomHandler(roomService *service.RoomService) *RoomHandler {
	return &RoomHandler{
		roomService: roomService,
	}
}

// Create godoc
// @Summary 創建討論室
// @Description 創建新的討論室，主題不存在時會自動建立
// @Tags 討論室
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.CreateRoomRequest true "討論室資料"
// @Success 201 {object} response.Response{data=response.RoomDetailResponse}
// @Failure 400 {object} response.Response
// @Router /api/v1/rooms [post]
func (h *RoomHandler) Create(c *gin.Context) {
	var req request.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "請求格式錯誤")
		return
	}

	userID := middleware.GetUserID(c)

	v := utils.NewValidator()
	v.ValidateTopicName("topic", req.Topic)
	v.ValidateRoomName("name", req.Name)
	if v.HasErrors() {
		response.ValidationError(c, v.Errors())
		return
	}

	room, err := h.roomService.Create(c.Request.Context(), &service.CreateRoomInput{
		HostID:      userID,
		TopicName:   req.Topic,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	detail, messages, participants, err := h.roomService.GetDetail(c.Request.Context(), room.ID, defaultPageLimit, 0)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, response.NewRoomDetailResponse(detail, messages, participants))
}

// GetByID godoc
// @Summary 獲取討論室詳情
// @Description 獲取討論室的詳細資訊、訊息與參與者
// @Tags 討論室
// @Produce json
// @Param id path string true "討論室 ID"
// @Param page query int false "頁碼"
// @Param limit query int false "每頁筆數"
// @Success 200 {object} response.Response{data=response.RoomDetailResponse}
// @Failure 404 {object} response.Response
// @Router /api/v1/rooms/{id} [get]
func (h *RoomHandler) GetByID(c *gin.Context) {
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

	detail, messages, participants, err := h.roomService.GetDetail(c.Request.Context(), roomID, page.Limit, page.Offset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, response.NewRoomDetailResponse(detail, messages, participants))
}

// List godoc
// @Summary 列出討論室
// @Description 依查詢條件列出討論室，按最近活動排序
// @Tags 討論室
// @Produce json
// @Param q query string false "搜尋關鍵字"
// @Param page query int false "頁碼"
// @Param limit query int false "每頁筆數"
// @Success 200 {object} response.Response{data=response.RoomListResponse}
// @Router /api/v1/rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	var req request.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "查詢參數錯誤")
		return
	}

	rooms, total, err := h.roomService.List(c.Request.Context(), req.Query, req.Limit, req.Offset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, response.NewRoomListResponse(rooms, total, req.Page, req.Limit))
}

// Update godoc
// @Summary 更新討論室
// @Description 更新討論室資訊，僅主持人可操作，主題必須已存在
// @Tags 討論室
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "討論室 ID"
// @Param request body request.UpdateRoomRequest true "更新資料"
// @Success 200 {object} response.Response{data=response.RoomDetailResponse}
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/rooms/{id} [put]
func (h *RoomHandler) Update(c *gin.Context) {
	roomID := c.Param("id")
	userID := middleware.GetUserID(c)

	if !utils.ValidateUUID(roomID) {
		response.BadRequest(c, "無效的討論室 ID")
		return
	}

	var req request.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "請求格式錯誤")
		return
	}

	v := utils.NewValidator()
	v.ValidateTopicName("topic", req.Topic)
	v.ValidateRoomName("name", req.Name)
	if v.HasErrors() {
		response.ValidationError(c, v.Errors())
		return
	}

	_, err := h.roomService.Update(c.Request.Context(), &service.UpdateRoomInput{
		RoomID:      roomID,
		UserID:      userID,
		TopicName:   req.Topic,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	detail, messages, participants, err := h.roomService.GetDetail(c.Request.Context(), roomID, defaultPageLimit, 0)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, response.NewRoomDetailResponse(detail, messages, participants))
}

// Delete godoc
// @Summary 刪除討論室
// @Description 刪除討論室及其所有訊息，僅主持人可操作
// @Tags 討論室
// @Produce json
// @Security BearerAuth
// @Param id path string true "討論室 ID"
// @Success 204
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/rooms/{id} [delete]
func (h *RoomHandler) Delete(c *gin.Context) {
	roomID := c.Param("id")
	userID := middleware.GetUserID(c)

	if !utils.ValidateUUID(roomID) {
		response.BadRequest(c, "無效的討論室 ID")
		return
	}

	if err := h.roomService.Delete(c.Request.Context(), roomID, userID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
