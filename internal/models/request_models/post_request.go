package request_models

// PostRequest creates or updates a post. A missing order number on create
// places the post after the existing ones.
type PostRequest struct {
	Name        string  `json:"name" binding:"required,max=200"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	OrderNumber *int    `json:"order_number" binding:"omitempty,min=0"`
}
