package request

// ByIDRequest is the common shape for endpoints taking a UUID path parameter.
type ByIDRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// ByGroupIDRequest is used by recurring-group endpoints.
type ByGroupIDRequest struct {
	GroupID string `uri:"groupId" binding:"required,uuid"`
}

// ListParams carries the shared pagination query parameters.
type ListParams struct {
	Page     int `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}
