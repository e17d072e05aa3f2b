package httpserver

// RecommendRequest is accepted both as JSON and as the page's form post.
type RecommendRequest struct {
	Username string `json:"username" form:"username" validate:"required,notblank"`
}
