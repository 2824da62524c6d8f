package repository

import (
	"akramfit/coaching-app/internal/domain"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrConflict     = RepositoryError("conflict")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// TxRunner executes a function inside a single all-or-nothing transaction.
// Every repository call made with the context passed to fn participates in
// the same transaction; if fn returns an error, nothing is committed.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// AdminRepository defines the interface for back-office user data.
type AdminRepository interface {
	Create(ctx context.Context, admin *domain.Admin) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)
	Count(ctx context.Context) (int64, error)
}

// ClientRepository defines the interface for roster member data.
type ClientRepository interface {
	// Create inserts a client whose ID has already been generated by the
	// caller (the membership code is derived from it before the insert).
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Client, error)
	GetByMembershipCode(ctx context.Context, code string) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// OrderRepository defines the interface for pending application data.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Order, error)
	ListPending(ctx context.Context) ([]domain.Order, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// PricingPlanRepository defines the interface for the pricing catalog.
type PricingPlanRepository interface {
	Create(ctx context.Context, plan *domain.PricingPlan) (primitive.ObjectID, error)
	GetByName(ctx context.Context, name string) (*domain.PricingPlan, error)
	List(ctx context.Context) ([]domain.PricingPlan, error)
	Update(ctx context.Context, plan *domain.PricingPlan) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// PromoCodeRepository defines the interface for discount tokens.
type PromoCodeRepository interface {
	// Create fails with ErrConflict when the (normalized) code already exists.
	Create(ctx context.Context, promo *domain.PromoCode) (primitive.ObjectID, error)
	// GetByCode expects an already upper-cased code.
	GetByCode(ctx context.Context, code string) (*domain.PromoCode, error)
	List(ctx context.Context) ([]domain.PromoCode, error)
	// MarkUsed transitions the code from active to used. It fails with
	// ErrConflict when the code is no longer active, which is what makes the
	// approval-time re-check race-safe.
	MarkUsed(ctx context.Context, code string, orderID primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// TransactionRepository defines the interface for one side of the ledger.
// Two instances exist, one over "transactions" (income) and one over
// "expenses".
type TransactionRepository interface {
	Create(ctx context.Context, txn *domain.Transaction) (primitive.ObjectID, error)
	List(ctx context.Context) ([]domain.Transaction, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ScheduleRepository defines the interface for the weekly schedule singleton.
type ScheduleRepository interface {
	// Get returns ErrNotFound when the singleton has never been saved.
	Get(ctx context.Context) (*domain.WeeklySchedule, error)
	// Save replaces the whole document (last-write-wins).
	Save(ctx context.Context, schedule *domain.WeeklySchedule) error
}

// GalleryRepository defines the interface for landing-page gallery items.
type GalleryRepository interface {
	Create(ctx context.Context, item *domain.GalleryItem) (primitive.ObjectID, error)
	List(ctx context.Context) ([]domain.GalleryItem, error)
	Update(ctx context.Context, item *domain.GalleryItem) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// AchievementRepository defines the interface for transformation showcases.
type AchievementRepository interface {
	Create(ctx context.Context, item *domain.Achievement) (primitive.ObjectID, error)
	List(ctx context.Context) ([]domain.Achievement, error)
	Update(ctx context.Context, item *domain.Achievement) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ProgressLogRepository defines the interface for per-client coaching notes.
type ProgressLogRepository interface {
	Create(ctx context.Context, entry *domain.ProgressLog) (primitive.ObjectID, error)
	ListByClientID(ctx context.Context, clientID primitive.ObjectID) ([]domain.ProgressLog, error)
}
