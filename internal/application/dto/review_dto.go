package dto

import "time"

// CreateReviewRequest entrada para crear una reseña. La cuenta sale del token.
type CreateReviewRequest struct {
	ProductID   string `json:"product_id"`
	Description string `json:"description"`
	Rating      int    `json:"rating"`
}

// UpdateReviewRequest campos opcionales a actualizar.
type UpdateReviewRequest struct {
	Description *string `json:"description"`
	Rating      *int    `json:"rating"`
}

// ReviewResponse salida de una reseña.
type ReviewResponse struct {
	ID          string    `json:"id"`
	AccountID   string    `json:"account_id"`
	ProductID   string    `json:"product_id"`
	Description string    `json:"description"`
	Rating      int       `json:"rating"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ReviewListResponse listado con conteo.
type ReviewListResponse struct {
	Items []ReviewResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// CreateCommentRequest entrada para comentar una reseña.
type CreateCommentRequest struct {
	Text string `json:"comment_text"`
}

// UpdateCommentRequest entrada para editar un comentario.
type UpdateCommentRequest struct {
	Text string `json:"comment_text"`
}

// CreateReplyRequest entrada para responder a un comentario.
type CreateReplyRequest struct {
	Text string `json:"reply_text"`
}

// ReplyResponse respuesta a un comentario.
type ReplyResponse struct {
	ID        string    `json:"id"`
	CommentID string    `json:"comment_id"`
	AccountID string    `json:"account_id"`
	Text      string    `json:"reply_text"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentResponse comentario con sus respuestas.
type CommentResponse struct {
	ID        string          `json:"id"`
	AccountID string          `json:"account_id"`
	ReviewID  string          `json:"review_id"`
	Text      string          `json:"comment_text"`
	Replies   []ReplyResponse `json:"replies"`
	CreatedAt time.Time       `json:"created_at"`
}

// CommentListResponse listado de comentarios de una reseña.
type CommentListResponse struct {
	Items []CommentResponse `json:"items"`
}
