package entity

import "time"

// Reply respuesta a un comentario. Se borran junto con su comentario.
type Reply struct {
	ID        string    `db:"id"`
	CommentID string    `db:"comment_id"`
	AccountID string    `db:"account_id"`
	Text      string    `db:"reply_text"`
	CreatedAt time.Time `db:"created_at"`
}

// Comment comentario sobre una reseña.
// Los tags db alimentan el repositorio genérico; Replies se carga aparte.
type Comment struct {
	ID        string    `db:"id"`
	AccountID string    `db:"account_id"`
	ReviewID  string    `db:"review_id"`
	Text      string    `db:"comment_text"`
	CreatedAt time.Time `db:"created_at"`
	Replies   []Reply   `db:"-"`
}
