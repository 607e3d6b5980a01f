package ws

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-demo/forum/internal/pkg/utils"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins in development
		// In production, you should check the origin
		return true
	},
}

// Handler handles WebSocket connections
type Handler struct {
	hub        *Hub
	jwtManager *utils.JWTManager
	logger     *zap.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub, jwtManager *utils.JWTManager, logger *zap.Logger) *Handler {
	return &Handler{
		hub:        hub,
		jwtManager: jwtManager,
		logger:     logger,
	}
}

// ServeWS handles WebSocket connection requests
// @Summary WebSocket 連線
// @Description 建立 WebSocket 連線接收討論室即時訊息
// @Tags WebSocket
// @Param token query string true "JWT Token"
// @Success 101 {string} string "Switching Protocols"
// @Failure 401 {object} map[string]string
// @Router /ws [get]
func (h *Handler) ServeWS(c *gin.Context) {
	// Get token from query parameter or header
	token := c.Query("token")
	if token == "" {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimPrefix(authHeader, "Bearer ")
		}
	}

	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "缺少認證 Token"})
		return
	}

	claims, err := h.jwtManager.ValidateAccessToken(token)
	if err != nil {
		h.logger.Warn("Invalid token for WebSocket",
			zap.Error(err),
		)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "無效的 Token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("Failed to upgrade WebSocket",
			zap.Error(err),
		)
		return
	}

	client := NewClient(h.hub, conn, claims.UserID, claims.Username, h.logger)

	h.hub.register <- client

	go client.WritePump()
	go client.ReadPump()
}

// GetStats returns WebSocket hub statistics
// @Summary 獲取 WebSocket 統計資訊
// @Description 獲取 WebSocket 連線統計資訊
// @Tags WebSocket
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]int
// @Router /api/v1/ws/stats [get]
func (h *Handler) GetStats(c *gin.Context) {
	stats := h.hub.GetStats()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stats,
	})
}
