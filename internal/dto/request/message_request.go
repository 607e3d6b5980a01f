package request

// PostMessageRequest represents a message posting request
type PostMessageRequest struct {
	Body string `json:"body" binding:"required,max=10000"`
}
