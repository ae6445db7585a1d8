package dto

type BlogPostResponse struct {
	Id      uint   `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type BlogPostsResponse struct {
	Posts []BlogPostResponse `json:"posts"`
}

type CreateBlogPostRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type CreateBlogPostResponse struct {
	Message string `json:"message"`
	Id      uint   `json:"id"`
}
