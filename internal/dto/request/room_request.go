package request

// CreateRoomRequest represents a room creation request. The topic is given by
// name; an unknown name creates the topic on the fly.
type CreateRoomRequest struct {
	Topic       string `json:"topic" binding:"required,min=1,max=200"`
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Description string `json:"description,omitempty" binding:"omitempty,max=2000"`
}

// UpdateRoomRequest represents a room update request. Unlike creation, the
// topic name must refer to an existing topic.
type UpdateRoomRequest struct {
	Topic       string `json:"topic" binding:"required,min=1,max=200"`
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Description string `json:"description,omitempty" binding:"omitempty,max=2000"`
}

// PaginationRequest represents pagination parameters
type PaginationRequest struct {
	Page  int `form:"page,default=1" binding:"min=1"`
	Limit int `form:"limit,default=20" binding:"min=1,max=100"`
}

// Offset calculates the offset for database queries
func (p *PaginationRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// SearchRequest represents a search request. An empty query is allowed and
// matches everything.
type SearchRequest struct {
	Query string `form:"q" binding:"omitempty,max=200"`
	PaginationRequest
}
