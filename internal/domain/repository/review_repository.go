package repository

import "github.com/jhoicas/Mercado-api/internal/domain/entity"

// ReviewRepository puerto de persistencia para Review.
type ReviewRepository interface {
	Create(review *entity.Review) error
	GetByID(id string) (*entity.Review, error)
	List(limit, offset int) ([]*entity.Review, error)
	ListByProduct(productID string) ([]*entity.Review, error)
	Count() (int, error)
	CountByProduct(productID string) (int, error)
	Update(review *entity.Review) error
	Delete(id string) (bool, error)
}

// CommentRepository puerto para comentarios de reseñas y sus respuestas.
type CommentRepository interface {
	Create(comment *entity.Comment) error
	GetByID(id string) (*entity.Comment, error)
	ListByReview(reviewID string) ([]*entity.Comment, error)
	Update(comment *entity.Comment) error
	// Delete borra el comentario y sus respuestas.
	Delete(id string) (bool, error)
	AddReply(reply *entity.Reply) error
}
