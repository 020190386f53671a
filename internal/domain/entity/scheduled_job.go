package entity

import "time"

// Tipos de trabajos diferidos.
const (
	JobPurgeAccount = "purge_account"
)

// ScheduledJob trabajo diferido persistido. Sustituye al temporizador en memoria:
// al reiniciar el proceso, el barrido de arranque retoma los trabajos vencidos.
type ScheduledJob struct {
	ID        string
	Kind      string
	AccountID string
	RunAt     time.Time
	CreatedAt time.Time
}
