package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
)

var _ repository.CommentRepository = (*CommentRepo)(nil)

// CommentRepo implementación del puerto CommentRepository sobre PostgreSQL.
// Cada comentario se devuelve con sus respuestas cargadas.
type CommentRepo struct {
	q       Querier
	table   *Table[entity.Comment]
	replies *Table[entity.Reply]
}

// NewCommentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCommentRepository(q Querier) *CommentRepo {
	return &CommentRepo{
		q:       q,
		table:   NewTable[entity.Comment](q, "comments"),
		replies: NewTable[entity.Reply](q, "replies"),
	}
}

// Create persiste un comentario nuevo.
func (r *CommentRepo) Create(comment *entity.Comment) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO comments (id, account_id, review_id, comment_text, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		comment.ID, comment.AccountID, comment.ReviewID, comment.Text, comment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

// GetByID obtiene un comentario con sus respuestas.
func (r *CommentRepo) GetByID(id string) (*entity.Comment, error) {
	comment, err := r.table.GetBy("id", id)
	if err != nil || comment == nil {
		return comment, err
	}
	if err := r.loadReplies(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListByReview lista los comentarios de una reseña con sus respuestas.
func (r *CommentRepo) ListByReview(reviewID string) ([]*entity.Comment, error) {
	list, err := r.table.ListBy("review_id", reviewID, "created_at")
	if err != nil {
		return nil, err
	}
	for _, comment := range list {
		if err := r.loadReplies(comment); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// Update actualiza el texto del comentario.
func (r *CommentRepo) Update(comment *entity.Comment) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE comments SET comment_text = $2 WHERE id = $1`,
		comment.ID, comment.Text,
	)
	if err != nil {
		return fmt.Errorf("update comment: %w", err)
	}
	return nil
}

// Delete borra el comentario; las respuestas caen en cascada.
func (r *CommentRepo) Delete(id string) (bool, error) {
	return r.table.DeleteBy("id", id)
}

// AddReply persiste una respuesta a un comentario.
func (r *CommentRepo) AddReply(reply *entity.Reply) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO replies (id, comment_id, account_id, reply_text, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		reply.ID, reply.CommentID, reply.AccountID, reply.Text, reply.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reply: %w", err)
	}
	return nil
}

func (r *CommentRepo) loadReplies(comment *entity.Comment) error {
	list, err := r.replies.ListBy("comment_id", comment.ID, "created_at")
	if err != nil {
		return err
	}
	comment.Replies = make([]entity.Reply, 0, len(list))
	for _, reply := range list {
		comment.Replies = append(comment.Replies, *reply)
	}
	return nil
}
