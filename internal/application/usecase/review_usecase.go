package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Mercado-api/internal/application/dto"
	"github.com/jhoicas/Mercado-api/internal/domain"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
)

// ReviewUseCase reseñas de productos, con comentarios y respuestas anidadas.
type ReviewUseCase struct {
	reviews  repository.ReviewRepository
	comments repository.CommentRepository
	products repository.ProductRepository
}

// NewReviewUseCase construye el caso de uso.
func NewReviewUseCase(reviews repository.ReviewRepository, comments repository.CommentRepository, products repository.ProductRepository) *ReviewUseCase {
	return &ReviewUseCase{reviews: reviews, comments: comments, products: products}
}

// Create crea una reseña. Solo cuentas con rol "user" reseñan; el rating va de
// 1 a 5 y el producto debe existir.
func (uc *ReviewUseCase) Create(accountID, accountRole string, in dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if accountRole != entity.RoleUser {
		return nil, domain.ErrForbidden
	}
	if in.Description == "" || in.Rating < 1 || in.Rating > 5 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.products.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	review := &entity.Review{
		ID:          uuid.New().String(),
		AccountID:   accountID,
		ProductID:   in.ProductID,
		Description: in.Description,
		Rating:      in.Rating,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.reviews.Create(review); err != nil {
		return nil, err
	}
	return reviewResponse(review), nil
}

// List lista reseñas paginadas con el total.
func (uc *ReviewUseCase) List(limit, offset int) (*dto.ReviewListResponse, error) {
	total, err := uc.reviews.Count()
	if err != nil {
		return nil, err
	}
	list, err := uc.reviews.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return reviewList(list, limit, offset, total), nil
}

// ListByProduct lista las reseñas de un producto con su conteo.
func (uc *ReviewUseCase) ListByProduct(productID string) (*dto.ReviewListResponse, error) {
	total, err := uc.reviews.CountByProduct(productID)
	if err != nil {
		return nil, err
	}
	list, err := uc.reviews.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	return reviewList(list, len(list), 0, total), nil
}

// GetByID obtiene una reseña.
func (uc *ReviewUseCase) GetByID(id string) (*dto.ReviewResponse, error) {
	review, err := uc.reviews.GetByID(id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, nil
	}
	return reviewResponse(review), nil
}

// Update actualiza una reseña. Solo el autor o un admin pueden hacerlo.
func (uc *ReviewUseCase) Update(id, actorID, actorRole string, in dto.UpdateReviewRequest) (*dto.ReviewResponse, error) {
	review, err := uc.reviews.GetByID(id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, nil
	}
	if actorRole != entity.RoleAdmin && review.AccountID != actorID {
		return nil, domain.ErrForbidden
	}
	if in.Description != nil {
		if *in.Description == "" {
			return nil, domain.ErrInvalidInput
		}
		review.Description = *in.Description
	}
	if in.Rating != nil {
		if *in.Rating < 1 || *in.Rating > 5 {
			return nil, domain.ErrInvalidInput
		}
		review.Rating = *in.Rating
	}
	review.UpdatedAt = time.Now()
	if err := uc.reviews.Update(review); err != nil {
		return nil, err
	}
	return reviewResponse(review), nil
}

// Delete elimina una reseña. Solo el autor o un admin pueden hacerlo.
func (uc *ReviewUseCase) Delete(id, actorID, actorRole string) (bool, error) {
	review, err := uc.reviews.GetByID(id)
	if err != nil {
		return false, err
	}
	if review == nil {
		return false, nil
	}
	if actorRole != entity.RoleAdmin && review.AccountID != actorID {
		return false, domain.ErrForbidden
	}
	return uc.reviews.Delete(id)
}

// AddComment comenta una reseña existente.
func (uc *ReviewUseCase) AddComment(reviewID, accountID string, in dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if in.Text == "" {
		return nil, domain.ErrInvalidInput
	}
	review, err := uc.reviews.GetByID(reviewID)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, domain.ErrNotFound
	}
	comment := &entity.Comment{
		ID:        uuid.New().String(),
		AccountID: accountID,
		ReviewID:  reviewID,
		Text:      in.Text,
		CreatedAt: time.Now(),
	}
	if err := uc.comments.Create(comment); err != nil {
		return nil, err
	}
	return commentResponse(comment), nil
}

// ListComments lista los comentarios de una reseña con sus respuestas.
func (uc *ReviewUseCase) ListComments(reviewID string) (*dto.CommentListResponse, error) {
	list, err := uc.comments.ListByReview(reviewID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CommentResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *commentResponse(c))
	}
	return &dto.CommentListResponse{Items: items}, nil
}

// UpdateComment edita un comentario. Solo el autor o un admin pueden hacerlo.
func (uc *ReviewUseCase) UpdateComment(id, actorID, actorRole string, in dto.UpdateCommentRequest) (*dto.CommentResponse, error) {
	if in.Text == "" {
		return nil, domain.ErrInvalidInput
	}
	comment, err := uc.comments.GetByID(id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, nil
	}
	if actorRole != entity.RoleAdmin && comment.AccountID != actorID {
		return nil, domain.ErrForbidden
	}
	comment.Text = in.Text
	if err := uc.comments.Update(comment); err != nil {
		return nil, err
	}
	return commentResponse(comment), nil
}

// DeleteComment borra un comentario y sus respuestas.
func (uc *ReviewUseCase) DeleteComment(id, actorID, actorRole string) (bool, error) {
	comment, err := uc.comments.GetByID(id)
	if err != nil {
		return false, err
	}
	if comment == nil {
		return false, nil
	}
	if actorRole != entity.RoleAdmin && comment.AccountID != actorID {
		return false, domain.ErrForbidden
	}
	return uc.comments.Delete(id)
}

// AddReply responde a un comentario existente.
func (uc *ReviewUseCase) AddReply(commentID, accountID string, in dto.CreateReplyRequest) (*dto.ReplyResponse, error) {
	if in.Text == "" {
		return nil, domain.ErrInvalidInput
	}
	comment, err := uc.comments.GetByID(commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, domain.ErrNotFound
	}
	reply := &entity.Reply{
		ID:        uuid.New().String(),
		CommentID: commentID,
		AccountID: accountID,
		Text:      in.Text,
		CreatedAt: time.Now(),
	}
	if err := uc.comments.AddReply(reply); err != nil {
		return nil, err
	}
	return replyResponse(reply), nil
}

func reviewList(list []*entity.Review, limit, offset, total int) *dto.ReviewListResponse {
	items := make([]dto.ReviewResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *reviewResponse(r))
	}
	return &dto.ReviewListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}
}

func reviewResponse(r *entity.Review) *dto.ReviewResponse {
	return &dto.ReviewResponse{
		ID:          r.ID,
		AccountID:   r.AccountID,
		ProductID:   r.ProductID,
		Description: r.Description,
		Rating:      r.Rating,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func commentResponse(c *entity.Comment) *dto.CommentResponse {
	replies := make([]dto.ReplyResponse, 0, len(c.Replies))
	for _, r := range c.Replies {
		replies = append(replies, *replyResponse(&r))
	}
	return &dto.CommentResponse{
		ID:        c.ID,
		AccountID: c.AccountID,
		ReviewID:  c.ReviewID,
		Text:      c.Text,
		Replies:   replies,
		CreatedAt: c.CreatedAt,
	}
}

func replyResponse(r *entity.Reply) *dto.ReplyResponse {
	return &dto.ReplyResponse{
		ID:        r.ID,
		CommentID: r.CommentID,
		AccountID: r.AccountID,
		Text:      r.Text,
		CreatedAt: r.CreatedAt,
	}
}
