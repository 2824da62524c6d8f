package service

// In-memory repository fakes shared by the service tests. The tx runner just
// calls through: the approval flow is written to make no writes before its
// re-checks, so an aborted run leaves the fakes untouched without rollback.

import (
	"context"
	"sort"
	"strings"

	"akramfit/coaching-app/internal/domain"
	"akramfit/coaching-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeTxRunner struct{}

func (fakeTxRunner) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// --- admins ---

type fakeAdminRepo struct {
	admins map[string]domain.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: make(map[string]domain.Admin)}
}

func (r *fakeAdminRepo) Create(_ context.Context, admin *domain.Admin) (primitive.ObjectID, error) {
	if _, ok := r.admins[admin.Email]; ok {
		return primitive.NilObjectID, repository.ErrConflict
	}
	id := primitive.NewObjectID()
	admin.ID = id
	r.admins[admin.Email] = *admin
	return id, nil
}

func (r *fakeAdminRepo) GetByEmail(_ context.Context, email string) (*domain.Admin, error) {
	admin, ok := r.admins[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &admin, nil
}

func (r *fakeAdminRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.admins)), nil
}

// --- orders ---

type fakeOrderRepo struct {
	orders map[primitive.ObjectID]domain.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[primitive.ObjectID]domain.Order)}
}

func (r *fakeOrderRepo) Create(_ context.Context, order *domain.Order) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	order.ID = id
	order.Status = domain.OrderPending
	r.orders[id] = *order
	return id, nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &order, nil
}

func (r *fakeOrderRepo) ListPending(_ context.Context) ([]domain.Order, error) {
	out := make([]domain.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.Hex() < out[j].ID.Hex() })
	return out, nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.orders[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.orders, id)
	return nil
}

// --- clients ---

type fakeClientRepo struct {
	clients map[primitive.ObjectID]domain.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[primitive.ObjectID]domain.Client)}
}

func (r *fakeClientRepo) Create(_ context.Context, client *domain.Client) error {
	r.clients[client.ID] = *client
	return nil
}

func (r *fakeClientRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Client, error) {
	client, ok := r.clients[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &client, nil
}

func (r *fakeClientRepo) GetByMembershipCode(_ context.Context, code string) (*domain.Client, error) {
	for _, c := range r.clients {
		if c.MembershipCode == code {
			client := c
			return &client, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeClientRepo) List(_ context.Context) ([]domain.Client, error) {
	out := make([]domain.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeClientRepo) Update(_ context.Context, client *domain.Client) error {
	if _, ok := r.clients[client.ID]; !ok {
		return repository.ErrNotFound
	}
	r.clients[client.ID] = *client
	return nil
}

func (r *fakeClientRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.clients[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.clients, id)
	return nil
}

// --- pricing plans ---

type fakePlanRepo struct {
	plans map[string]domain.PricingPlan
}

func newFakePlanRepo(plans ...domain.PricingPlan) *fakePlanRepo {
	r := &fakePlanRepo{plans: make(map[string]domain.PricingPlan)}
	for _, p := range plans {
		if p.ID.IsZero() {
			p.ID = primitive.NewObjectID()
		}
		r.plans[p.Name] = p
	}
	return r
}

func (r *fakePlanRepo) Create(_ context.Context, plan *domain.PricingPlan) (primitive.ObjectID, error) {
	if _, ok := r.plans[plan.Name]; ok {
		return primitive.NilObjectID, repository.ErrConflict
	}
	plan.ID = primitive.NewObjectID()
	r.plans[plan.Name] = *plan
	return plan.ID, nil
}

func (r *fakePlanRepo) GetByName(_ context.Context, name string) (*domain.PricingPlan, error) {
	plan, ok := r.plans[name]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &plan, nil
}

func (r *fakePlanRepo) List(_ context.Context) ([]domain.PricingPlan, error) {
	out := make([]domain.PricingPlan, 0, len(r.plans))
	for _, p := range r.plans {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePlanRepo) Update(_ context.Context, plan *domain.PricingPlan) error {
	for name, p := range r.plans {
		if p.ID == plan.ID {
			delete(r.plans, name)
			r.plans[plan.Name] = *plan
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakePlanRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	for name, p := range r.plans {
		if p.ID == id {
			delete(r.plans, name)
			return nil
		}
	}
	return repository.ErrNotFound
}

// --- promo codes ---

type fakePromoRepo struct {
	promos map[string]domain.PromoCode
}

func newFakePromoRepo(promos ...domain.PromoCode) *fakePromoRepo {
	r := &fakePromoRepo{promos: make(map[string]domain.PromoCode)}
	for _, p := range promos {
		if p.ID.IsZero() {
			p.ID = primitive.NewObjectID()
		}
		if p.Status == "" {
			p.Status = domain.PromoActive
		}
		r.promos[strings.ToUpper(p.Code)] = p
	}
	return r
}

func (r *fakePromoRepo) Create(_ context.Context, promo *domain.PromoCode) (primitive.ObjectID, error) {
	if _, ok := r.promos[promo.Code]; ok {
		return primitive.NilObjectID, repository.ErrConflict
	}
	promo.ID = primitive.NewObjectID()
	r.promos[promo.Code] = *promo
	return promo.ID, nil
}

func (r *fakePromoRepo) GetByCode(_ context.Context, code string) (*domain.PromoCode, error) {
	promo, ok := r.promos[code]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &promo, nil
}

func (r *fakePromoRepo) List(_ context.Context) ([]domain.PromoCode, error) {
	out := make([]domain.PromoCode, 0, len(r.promos))
	for _, p := range r.promos {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePromoRepo) MarkUsed(_ context.Context, code string, orderID primitive.ObjectID) error {
	promo, ok := r.promos[code]
	if !ok || promo.Status != domain.PromoActive {
		return repository.ErrConflict
	}
	promo.Status = domain.PromoUsed
	promo.UsedByOrderID = &orderID
	r.promos[code] = promo
	return nil
}

func (r *fakePromoRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	for code, p := range r.promos {
		if p.ID == id {
			delete(r.promos, code)
			return nil
		}
	}
	return repository.ErrNotFound
}

// --- ledger ---

type fakeTransactionRepo struct {
	txns []domain.Transaction
}

func (r *fakeTransactionRepo) Create(_ context.Context, txn *domain.Transaction) (primitive.ObjectID, error) {
	txn.ID = primitive.NewObjectID()
	r.txns = append(r.txns, *txn)
	return txn.ID, nil
}

func (r *fakeTransactionRepo) List(_ context.Context) ([]domain.Transaction, error) {
	out := make([]domain.Transaction, len(r.txns))
	copy(out, r.txns)
	return out, nil
}

func (r *fakeTransactionRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	for i, t := range r.txns {
		if t.ID == id {
			r.txns = append(r.txns[:i], r.txns[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// --- schedule singleton ---

type fakeScheduleRepo struct {
	schedule *domain.WeeklySchedule
}

func (r *fakeScheduleRepo) Get(_ context.Context) (*domain.WeeklySchedule, error) {
	if r.schedule == nil {
		return nil, repository.ErrNotFound
	}
	return r.schedule, nil
}

func (r *fakeScheduleRepo) Save(_ context.Context, schedule *domain.WeeklySchedule) error {
	r.schedule = schedule
	return nil
}

// --- progress logs ---

type fakeProgressLogRepo struct {
	logs []domain.ProgressLog
}

func (r *fakeProgressLogRepo) Create(_ context.Context, entry *domain.ProgressLog) (primitive.ObjectID, error) {
	entry.ID = primitive.NewObjectID()
	r.logs = append(r.logs, *entry)
	return entry.ID, nil
}

func (r *fakeProgressLogRepo) ListByClientID(_ context.Context, clientID primitive.ObjectID) ([]domain.ProgressLog, error) {
	var out []domain.ProgressLog
	for _, l := range r.logs {
		if l.ClientID == clientID {
			out = append(out, l)
		}
	}
	return out, nil
}
