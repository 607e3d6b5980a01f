package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/go-demo/forum/internal/dto/response"
	"github.com/go-demo/forum/internal/pkg/utils"
	"github.com/go-demo/forum/internal/service"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetProfile godoc
// @Summary 獲取用戶檔案
// @Description 獲取用戶的公開檔案、主持的討論室與最近訊息
// @Tags 用戶
// @Produce json
// @Param id path string true "用戶 ID"
// @Success 200 {object} response.Response{data=response.ProfileResponse}
// @Failure 404 {object} response.Response
// @Router /api/v1/users/{id} [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID := c.Param("id")

	if !utils.ValidateUUID(userID) {
		response.BadRequest(c, "無效的用戶 ID")
		return
	}

	result, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, response.NewProfileResponse(result.Profile, result.Rooms, result.Messages))
}
