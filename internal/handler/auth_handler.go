package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/go-demo/forum/internal/dto/request"
	"github.com/go-demo/forum/internal/dto/response"
	"github.com/go-demo/forum/internal/middleware"
	"github.com/go-demo/forum/internal/pkg/utils"
	"github.com/go-demo/forum/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
// @Summary 註冊新用戶
// @Description 使用使用者名稱、電子郵件和密碼註冊
// @Tags 認證
// @Accept json
// @Produce json
// @Param request body request.RegisterRequest true "註冊資料"
// @Success 201 {object} response.Response{data=response.AuthResponse}
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "請求格式錯誤")
		return
	}

	v := utils.NewValidator()
	v.ValidateUsername("username", req.Username)
	v.ValidateEmail("email", req.Email)
	v.ValidatePassword("password", req.Password)
	if v.HasErrors() {
		response.ValidationError(c, v.Errors())
		return
	}

	result, err := h.authService.Register(c.Request.Context(), &service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, &response.AuthResponse{
		User: response.NewUserResponse(result.User, true),
		Token: &response.TokenResponse{
			AccessToken:  result.TokenPair.AccessToken,
			RefreshToken: result.TokenPair.RefreshToken,
			ExpiresAt:    result.TokenPair.ExpiresAt,
			TokenType:    "Bearer",
		},
	})
}

// Login godoc
// @Summary 用戶登入
// @Description 使用使用者名稱和密碼登入
// @Tags 認證
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "登入資料"
// @Success 200 {object} response.Response{data=response.AuthResponse}
// @Failure 401 {object} response.Response
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "請求格式錯誤")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), &service.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &response.AuthResponse{
		User: response.NewUserResponse(result.User, true),
		Token: &response.TokenResponse{
			AccessToken:  result.TokenPair.AccessToken,
			RefreshToken: result.TokenPair.RefreshToken,
			ExpiresAt:    result.TokenPair.ExpiresAt,
			TokenType:    "Bearer",
		},
	})
}

// RefreshToken godoc
// @Summary 刷新 Token
// @Description 使用 Refresh Token 換取新的 Token
// @Tags 認證
// @Accept json
// @Produce json
// @Param request body request.RefreshTokenRequest true "Refresh Token"
// @Success 200 {object} response.Response{data=response.TokenResponse}
// @Failure 401 {object} response.Response
// @Router /api/v1/auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req request.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "請求格式錯誤")
		return
	}

	pair, err := h.authService.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &response.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresAt:    pair.ExpiresAt,
		TokenType:    "Bearer",
	})
}

// Me godoc
// @Summary 獲取當前用戶
// @Description 獲取當前登入用戶的資料
// @Tags 認證
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=response.UserResponse}
// @Failure 401 {object} response.Response
// @Router /api/v1/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID := middleware.GetUserID(c)

	user, err := h.authService.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, response.NewUserResponse(user, true))
}

// DeleteMe godoc
// @Summary 刪除帳號
// @Description 刪除當前登入用戶的帳號，其討論室會保留但失去主持人
// @Tags 認證
// @Produce json
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} response.Response
// @Router /api/v1/auth/me [delete]
func (h *AuthHandler) DeleteMe(c *gin.Context) {
	userID := middleware.GetUserID(c)

	if err := h.authService.DeleteAccount(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
