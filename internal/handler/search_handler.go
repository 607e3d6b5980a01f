package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/go-demo/forum/internal/dto/request"
	"github.com/go-demo/forum/internal/dto/response"
	"github.com/go-demo/forum/internal/service"
)

type SearchHandler struct {
	searchService *service.SearchService
}

func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
	}
}

// Search godoc
// @Summary 綜合搜尋
// @Description 搜尋討論室、主題與訊息，空白關鍵字回傳全部
// @Tags 搜尋
// @Produce json
// @Param q query string false "搜尋關鍵字"
// @Param page query int false "頁碼"
// @Param limit query int false "每頁筆數"
// @Success 200 {object} response.Response{data=response.SearchResponse}
// @Router /api/v1/search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	var req request.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "查詢參數錯誤")
		return
	}

	result, err := h.searchService.Search(c.Request.Context(), req.Query, req.Limit, req.Offset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, response.NewSearchResponse(result.Rooms, result.RoomCount, result.Topics, result.Messages))
}

// ListTopics godoc
// @Summary 列出主題
// @Description 列出所有主題與各自的討論室數量
// @Tags 搜尋
// @Produce json
// @Success 200 {object} response.Response{data=[]response.TopicResponse}
// @Router /api/v1/topics [get]
func (h *SearchHandler) ListTopics(c *gin.Context) {
	topics, err := h.searchService.ListTopics(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	topicResponses := make([]*response.TopicResponse, len(topics))
	for i, t := range topics {
		topicResponses[i] = response.NewTopicResponse(t)
	}

	response.Success(c, topicResponses)
}
