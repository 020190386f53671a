package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Mercado-api/internal/domain"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementación del puerto AccountRepository sobre PostgreSQL.
// El perfil de proveedor vive en columnas nullable de la misma fila,
// discriminadas por role.
type AccountRepo struct {
	q Querier
}

// NewAccountRepository construye el adaptador de persistencia para cuentas.
func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

const accountColumns = `
	id, first_name, last_name, email, phone_number, birth_date, gender,
	address_city, address_commune, address_district, address_village, address_street, address_home_number,
	profile_picture, role, password_hash, verified, status, last_login, password_changed_at,
	farm_name, harvest_schedule, is_organic, supplier_status,
	created_at, updated_at`

// Create persiste una cuenta nueva.
func (r *AccountRepo) Create(account *entity.Account) error {
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26)`
	farmName, harvestSchedule, isOrganic, supplierStatus := supplierFields(account)
	_, err := r.q.Exec(context.Background(), query,
		account.ID, account.FirstName, account.LastName, account.Email, account.PhoneNumber,
		nullTime(account.BirthDate), account.Gender,
		account.Address.City, account.Address.Commune, account.Address.District,
		account.Address.Village, account.Address.Street, account.Address.HomeNumber,
		account.ProfilePicture, account.Role, account.PasswordHash, account.Verified, account.Status,
		nullTime(account.LastLogin), nullTime(account.PasswordChangedAt),
		farmName, harvestSchedule, isOrganic, supplierStatus,
		account.CreatedAt, account.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByID obtiene una cuenta por ID.
func (r *AccountRepo) GetByID(id string) (*entity.Account, error) {
	return r.getWhere("id = $1", id)
}

// GetByEmail obtiene una cuenta por email.
func (r *AccountRepo) GetByEmail(email string) (*entity.Account, error) {
	return r.getWhere("email = $1", email)
}

func (r *AccountRepo) getWhere(cond string, args ...any) (*entity.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE ` + cond
	row := r.q.QueryRow(context.Background(), query, args...)
	account, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return account, nil
}

// Update actualiza una cuenta (el email no cambia).
func (r *AccountRepo) Update(account *entity.Account) error {
	query := `
		UPDATE accounts SET
			first_name = $2, last_name = $3, phone_number = $4, birth_date = $5, gender = $6,
			address_city = $7, address_commune = $8, address_district = $9,
			address_village = $10, address_street = $11, address_home_number = $12,
			profile_picture = $13, password_hash = $14, verified = $15, status = $16,
			last_login = $17, password_changed_at = $18,
			farm_name = $19, harvest_schedule = $20, is_organic = $21, supplier_status = $22,
			updated_at = $23
		WHERE id = $1`
	farmName, harvestSchedule, isOrganic, supplierStatus := supplierFields(account)
	_, err := r.q.Exec(context.Background(), query,
		account.ID, account.FirstName, account.LastName, account.PhoneNumber,
		nullTime(account.BirthDate), account.Gender,
		account.Address.City, account.Address.Commune, account.Address.District,
		account.Address.Village, account.Address.Street, account.Address.HomeNumber,
		account.ProfilePicture, account.PasswordHash, account.Verified, account.Status,
		nullTime(account.LastLogin), nullTime(account.PasswordChangedAt),
		farmName, harvestSchedule, isOrganic, supplierStatus,
		account.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	return nil
}

// List lista cuentas con paginación, de la más reciente a la más antigua.
func (r *AccountRepo) List(limit, offset int) ([]*entity.Account, error) {
	return r.listWhere("TRUE", limit, offset)
}

// ListSuppliers lista solo cuentas de proveedor.
func (r *AccountRepo) ListSuppliers(limit, offset int) ([]*entity.Account, error) {
	return r.listWhere("role = 'supplier'", limit, offset)
}

func (r *AccountRepo) listWhere(cond string, limit, offset int) ([]*entity.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE ` + cond + `
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		list = append(list, account)
	}
	return list, rows.Err()
}

// Count cuenta todas las cuentas.
func (r *AccountRepo) Count() (int, error) {
	return r.countWhere("TRUE")
}

// CountSuppliers cuenta las cuentas de proveedor.
func (r *AccountRepo) CountSuppliers() (int, error) {
	return r.countWhere("role = 'supplier'")
}

func (r *AccountRepo) countWhere(cond string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM accounts WHERE `+cond).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count accounts: %w", err)
	}
	return n, nil
}

// Delete borra definitivamente la cuenta; sesiones, carrito, historial y demás
// dependencias caen en cascada. Devuelve false si no existía.
func (r *AccountRepo) Delete(id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete account: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// PasswordHistory devuelve los hashes anteriores, del más reciente al más antiguo.
func (r *AccountRepo) PasswordHistory(accountID string) ([]entity.PasswordHistoryEntry, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT hash, changed_at FROM account_password_history WHERE account_id = $1 ORDER BY changed_at DESC`,
		accountID,
	)
	if err != nil {
		return nil, fmt.Errorf("list password history: %w", err)
	}
	defer rows.Close()
	var history []entity.PasswordHistoryEntry
	for rows.Next() {
		var entry entity.PasswordHistoryEntry
		if err := rows.Scan(&entry.Hash, &entry.ChangedAt); err != nil {
			return nil, fmt.Errorf("scan password history: %w", err)
		}
		history = append(history, entry)
	}
	return history, rows.Err()
}

// AppendPasswordHistory registra un hash recién establecido.
func (r *AccountRepo) AppendPasswordHistory(accountID, hash string, changedAt time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO account_password_history (account_id, hash, changed_at) VALUES ($1, $2, $3)`,
		accountID, hash, changedAt,
	)
	if err != nil {
		return fmt.Errorf("insert password history: %w", err)
	}
	return nil
}

// scanAccount arma la entidad desde una fila, reconstruyendo el perfil de
// proveedor cuando las columnas nullable vienen pobladas.
func scanAccount(row pgx.Row) (*entity.Account, error) {
	var a entity.Account
	var birthDate, lastLogin, passwordChangedAt, harvestSchedule *time.Time
	var farmName, supplierStatus *string
	var isOrganic *bool
	err := row.Scan(
		&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.PhoneNumber, &birthDate, &a.Gender,
		&a.Address.City, &a.Address.Commune, &a.Address.District,
		&a.Address.Village, &a.Address.Street, &a.Address.HomeNumber,
		&a.ProfilePicture, &a.Role, &a.PasswordHash, &a.Verified, &a.Status,
		&lastLogin, &passwordChangedAt,
		&farmName, &harvestSchedule, &isOrganic, &supplierStatus,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if birthDate != nil {
		a.BirthDate = *birthDate
	}
	if lastLogin != nil {
		a.LastLogin = *lastLogin
	}
	if passwordChangedAt != nil {
		a.PasswordChangedAt = *passwordChangedAt
	}
	if a.Role == entity.RoleSupplier {
		profile := &entity.SupplierProfile{HarvestSchedule: harvestSchedule}
		if farmName != nil {
			profile.FarmName = *farmName
		}
		if isOrganic != nil {
			profile.IsOrganic = *isOrganic
		}
		if supplierStatus != nil {
			profile.Status = *supplierStatus
		}
		a.Supplier = profile
	}
	return &a, nil
}

// supplierFields aplana el perfil de proveedor a columnas nullable.
func supplierFields(account *entity.Account) (farmName *string, harvestSchedule *time.Time, isOrganic *bool, status *string) {
	if account.Supplier == nil {
		return nil, nil, nil, nil
	}
	return &account.Supplier.FarmName, account.Supplier.HarvestSchedule,
		&account.Supplier.IsOrganic, &account.Supplier.Status
}

// nullTime convierte el cero de time.Time a NULL.
func nullTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
