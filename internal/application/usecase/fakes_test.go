package usecase_test

import (
	"context"
	"io"
	"time"

	"github.com/jhoicas/Mercado-api/internal/application/usecase"
	"github.com/jhoicas/Mercado-api/internal/domain"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
)

// Fakes en memoria compartidos por los tests del paquete.

type memAccounts struct {
	byID    map[string]*entity.Account
	history map[string][]entity.PasswordHistoryEntry
}

func newMemAccounts(accounts ...*entity.Account) *memAccounts {
	m := &memAccounts{
		byID:    make(map[string]*entity.Account),
		history: make(map[string][]entity.PasswordHistoryEntry),
	}
	for _, a := range accounts {
		m.byID[a.ID] = a
	}
	return m
}

func (m *memAccounts) Create(a *entity.Account) error {
	m.byID[a.ID] = a
	return nil
}

func (m *memAccounts) GetByID(id string) (*entity.Account, error) { return m.byID[id], nil }

func (m *memAccounts) GetByEmail(email string) (*entity.Account, error) {
	for _, a := range m.byID {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}

func (m *memAccounts) Update(a *entity.Account) error {
	m.byID[a.ID] = a
	return nil
}

func (m *memAccounts) List(limit, offset int) ([]*entity.Account, error) {
	out := make([]*entity.Account, 0, len(m.byID))
	for _, a := range m.byID {
		out = append(out, a)
	}
	return out, nil
}

func (m *memAccounts) ListSuppliers(limit, offset int) ([]*entity.Account, error) {
	out := make([]*entity.Account, 0)
	for _, a := range m.byID {
		if a.IsSupplier() {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memAccounts) Count() (int, error) { return len(m.byID), nil }

func (m *memAccounts) CountSuppliers() (int, error) {
	n := 0
	for _, a := range m.byID {
		if a.IsSupplier() {
			n++
		}
	}
	return n, nil
}

func (m *memAccounts) Delete(id string) (bool, error) {
	_, ok := m.byID[id]
	delete(m.byID, id)
	return ok, nil
}

func (m *memAccounts) PasswordHistory(accountID string) ([]entity.PasswordHistoryEntry, error) {
	return m.history[accountID], nil
}

func (m *memAccounts) AppendPasswordHistory(accountID, hash string, changedAt time.Time) error {
	m.history[accountID] = append(m.history[accountID], entity.PasswordHistoryEntry{Hash: hash, ChangedAt: changedAt})
	return nil
}

type memSessions struct {
	sessions []*entity.Session
}

func (m *memSessions) Create(s *entity.Session) error {
	m.sessions = append(m.sessions, s)
	return nil
}

func (m *memSessions) GetByAccountAndAccessToken(accountID, accessToken string) (*entity.Session, error) {
	for _, s := range m.sessions {
		if s.AccountID == accountID && s.AccessToken == accessToken {
			return s, nil
		}
	}
	return nil, nil
}

func (m *memSessions) GetByRefreshToken(refreshToken string) (*entity.Session, error) {
	for _, s := range m.sessions {
		if s.RefreshToken == refreshToken {
			return s, nil
		}
	}
	return nil, nil
}

func (m *memSessions) UpdateAccessToken(sessionID, accessToken string) error {
	for _, s := range m.sessions {
		if s.ID == sessionID {
			s.AccessToken = accessToken
		}
	}
	return nil
}

func (m *memSessions) DeleteByAccount(accountID string) error {
	kept := m.sessions[:0]
	for _, s := range m.sessions {
		if s.AccountID != accountID {
			kept = append(kept, s)
		}
	}
	m.sessions = kept
	return nil
}

type memJobs struct {
	byID map[string]*entity.ScheduledJob
}

func newMemJobs() *memJobs {
	return &memJobs{byID: make(map[string]*entity.ScheduledJob)}
}

func (m *memJobs) Create(ctx context.Context, job *entity.ScheduledJob) error {
	m.byID[job.ID] = job
	return nil
}

func (m *memJobs) Due(ctx context.Context, now time.Time) ([]*entity.ScheduledJob, error) {
	out := make([]*entity.ScheduledJob, 0)
	for _, j := range m.byID {
		if !j.RunAt.After(now) {
			out = append(out, j)
		}
	}
	return out, nil
}

func (m *memJobs) Delete(ctx context.Context, id string) error {
	delete(m.byID, id)
	return nil
}

func (m *memJobs) DeleteByAccount(ctx context.Context, accountID string) error {
	for id, j := range m.byID {
		if j.AccountID == accountID {
			delete(m.byID, id)
		}
	}
	return nil
}

type memProducts struct {
	byID map[string]*entity.Product
}

func newMemProducts(products ...*entity.Product) *memProducts {
	m := &memProducts{byID: make(map[string]*entity.Product)}
	for _, p := range products {
		m.byID[p.ID] = p
	}
	return m
}

func (m *memProducts) Create(p *entity.Product) error {
	m.byID[p.ID] = p
	return nil
}

func (m *memProducts) GetByID(id string) (*entity.Product, error) { return m.byID[id], nil }

func (m *memProducts) GetBySlug(slug string) (*entity.Product, error) {
	for _, p := range m.byID {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, nil
}

func (m *memProducts) GetByName(name string) (*entity.Product, error) {
	for _, p := range m.byID {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, nil
}

func (m *memProducts) List(limit, offset int) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(m.byID))
	for _, p := range m.byID {
		out = append(out, p)
	}
	return out, nil
}

func (m *memProducts) Update(p *entity.Product) error {
	m.byID[p.ID] = p
	return nil
}

func (m *memProducts) Delete(id string) (bool, error) {
	_, ok := m.byID[id]
	delete(m.byID, id)
	return ok, nil
}

func (m *memProducts) DecrementQuantity(productID string, qty int) error {
	p, ok := m.byID[productID]
	if !ok || p.Quantity < qty {
		return domain.ErrInsufficientStock
	}
	p.Quantity -= qty
	return nil
}

type memCategories struct {
	byID map[string]*entity.Category
}

func newMemCategories(categories ...*entity.Category) *memCategories {
	m := &memCategories{byID: make(map[string]*entity.Category)}
	for _, c := range categories {
		m.byID[c.ID] = c
	}
	return m
}

func (m *memCategories) Create(c *entity.Category) error {
	m.byID[c.ID] = c
	return nil
}

func (m *memCategories) GetByID(id string) (*entity.Category, error) { return m.byID[id], nil }

func (m *memCategories) GetBySlug(slug string) (*entity.Category, error) {
	for _, c := range m.byID {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, nil
}

func (m *memCategories) GetByName(name string) (*entity.Category, error) {
	for _, c := range m.byID {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}

func (m *memCategories) List() ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(m.byID))
	for _, c := range m.byID {
		out = append(out, c)
	}
	return out, nil
}

func (m *memCategories) Update(c *entity.Category) error {
	m.byID[c.ID] = c
	return nil
}

func (m *memCategories) DeleteBySlug(slug string) (bool, error) {
	for id, c := range m.byID {
		if c.Slug == slug {
			delete(m.byID, id)
			return true, nil
		}
	}
	return false, nil
}

type memReviews struct {
	byID map[string]*entity.Review
}

func newMemReviews() *memReviews {
	return &memReviews{byID: make(map[string]*entity.Review)}
}

func (m *memReviews) Create(r *entity.Review) error {
	m.byID[r.ID] = r
	return nil
}

func (m *memReviews) GetByID(id string) (*entity.Review, error) { return m.byID[id], nil }

func (m *memReviews) List(limit, offset int) ([]*entity.Review, error) {
	out := make([]*entity.Review, 0, len(m.byID))
	for _, r := range m.byID {
		out = append(out, r)
	}
	return out, nil
}

func (m *memReviews) ListByProduct(productID string) ([]*entity.Review, error) {
	out := make([]*entity.Review, 0)
	for _, r := range m.byID {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memReviews) Count() (int, error) { return len(m.byID), nil }

func (m *memReviews) CountByProduct(productID string) (int, error) {
	list, _ := m.ListByProduct(productID)
	return len(list), nil
}

func (m *memReviews) Update(r *entity.Review) error {
	m.byID[r.ID] = r
	return nil
}

func (m *memReviews) Delete(id string) (bool, error) {
	_, ok := m.byID[id]
	delete(m.byID, id)
	return ok, nil
}

type memComments struct {
	byID map[string]*entity.Comment
}

func newMemComments() *memComments {
	return &memComments{byID: make(map[string]*entity.Comment)}
}

func (m *memComments) Create(c *entity.Comment) error {
	m.byID[c.ID] = c
	return nil
}

func (m *memComments) GetByID(id string) (*entity.Comment, error) { return m.byID[id], nil }

func (m *memComments) ListByReview(reviewID string) ([]*entity.Comment, error) {
	out := make([]*entity.Comment, 0)
	for _, c := range m.byID {
		if c.ReviewID == reviewID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memComments) Update(c *entity.Comment) error {
	m.byID[c.ID] = c
	return nil
}

func (m *memComments) Delete(id string) (bool, error) {
	_, ok := m.byID[id]
	delete(m.byID, id)
	return ok, nil
}

func (m *memComments) AddReply(r *entity.Reply) error {
	c, ok := m.byID[r.CommentID]
	if !ok {
		return domain.ErrNotFound
	}
	c.Replies = append(c.Replies, *r)
	return nil
}

// fakePhotoStore registra las subidas y firma URLs predecibles.
type fakePhotoStore struct {
	uploads map[string]string // key -> content type
}

func newFakePhotoStore() *fakePhotoStore {
	return &fakePhotoStore{uploads: make(map[string]string)}
}

func (f *fakePhotoStore) Put(ctx context.Context, key, contentType string, body io.Reader) error {
	f.uploads[key] = contentType
	return nil
}

func (f *fakePhotoStore) PresignGet(ctx context.Context, key string) (string, error) {
	return "https://storage.test/" + key + "?firma=abc", nil
}

type memCarts struct {
	byAccount map[string]*entity.Cart
}

func newMemCarts() *memCarts {
	return &memCarts{byAccount: make(map[string]*entity.Cart)}
}

func (m *memCarts) GetByAccount(accountID string) (*entity.Cart, error) {
	return m.byAccount[accountID], nil
}

func (m *memCarts) Upsert(cart *entity.Cart) error {
	m.byAccount[cart.AccountID] = cart
	return nil
}

func (m *memCarts) DeleteByAccount(accountID string) (bool, error) {
	_, ok := m.byAccount[accountID]
	delete(m.byAccount, accountID)
	return ok, nil
}

type memOrders struct {
	byID map[string]*entity.Order
}

func newMemOrders() *memOrders {
	return &memOrders{byID: make(map[string]*entity.Order)}
}

func (m *memOrders) Create(o *entity.Order) error {
	m.byID[o.ID] = o
	return nil
}

func (m *memOrders) GetByID(id string) (*entity.Order, error) { return m.byID[id], nil }

func (m *memOrders) List(limit, offset int) ([]*entity.Order, error) {
	out := make([]*entity.Order, 0, len(m.byID))
	for _, o := range m.byID {
		out = append(out, o)
	}
	return out, nil
}

func (m *memOrders) Update(o *entity.Order) error {
	m.byID[o.ID] = o
	return nil
}

func (m *memOrders) Delete(id string) (bool, error) {
	_, ok := m.byID[id]
	delete(m.byID, id)
	return ok, nil
}

type memOrderHistory struct {
	byID map[string]*entity.OrderHistory
}

func newMemOrderHistory() *memOrderHistory {
	return &memOrderHistory{byID: make(map[string]*entity.OrderHistory)}
}

func (m *memOrderHistory) Create(h *entity.OrderHistory) error {
	m.byID[h.ID] = h
	return nil
}

func (m *memOrderHistory) GetByID(id string) (*entity.OrderHistory, error) { return m.byID[id], nil }

func (m *memOrderHistory) ListByOrder(orderID string) ([]*entity.OrderHistory, error) {
	out := make([]*entity.OrderHistory, 0)
	for _, h := range m.byID {
		if h.OrderID == orderID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (m *memOrderHistory) Update(h *entity.OrderHistory) error {
	m.byID[h.ID] = h
	return nil
}

func (m *memOrderHistory) Delete(id string) (bool, error) {
	_, ok := m.byID[id]
	delete(m.byID, id)
	return ok, nil
}

// fakeTxRunner imita la transacción: ante un error de fn restaura el estado
// previo de los fakes, igual que haría un rollback.
type fakeTxRunner struct {
	orders   *memOrders
	products *memProducts
	history  *memOrderHistory
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(orders repository.OrderRepository, products repository.ProductRepository, history repository.OrderHistoryRepository) error) error {
	ordersBackup := snapshotOrders(r.orders)
	productsBackup := snapshotProducts(r.products)
	historyBackup := snapshotHistory(r.history)

	if err := fn(r.orders, r.products, r.history); err != nil {
		r.orders.byID = ordersBackup
		r.products.byID = productsBackup
		r.history.byID = historyBackup
		return err
	}
	return nil
}

func snapshotOrders(m *memOrders) map[string]*entity.Order {
	out := make(map[string]*entity.Order, len(m.byID))
	for k, v := range m.byID {
		clone := *v
		out[k] = &clone
	}
	return out
}

func snapshotProducts(m *memProducts) map[string]*entity.Product {
	out := make(map[string]*entity.Product, len(m.byID))
	for k, v := range m.byID {
		clone := *v
		out[k] = &clone
	}
	return out
}

func snapshotHistory(m *memOrderHistory) map[string]*entity.OrderHistory {
	out := make(map[string]*entity.OrderHistory, len(m.byID))
	for k, v := range m.byID {
		clone := *v
		out[k] = &clone
	}
	return out
}

var _ usecase.OrderTxRunner = (*fakeTxRunner)(nil)
