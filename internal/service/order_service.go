package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"akramfit/coaching-app/internal/domain"
	"akramfit/coaching-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrPlanNotFound     = errors.New("pricing plan not found")
	ErrPromoNotFound    = errors.New("this promo code does not exist")
	ErrPromoAlreadyUsed = errors.New("this promo code has already been used")
)

// --- Service Interface ---
type OrderService interface {
	// SubmitOrder validates a public subscription application and stages it
	// as a pending order. The final price is recomputed on the server from
	// the catalog plan, the duration tier and the promo discount; the value
	// the form displayed is not trusted.
	SubmitOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)

	// ValidatePromoCode checks a code without consuming it.
	ValidatePromoCode(ctx context.Context, code string) (*domain.PromoCode, error)

	ListPendingOrders(ctx context.Context) ([]domain.Order, error)

	// ApproveOrder atomically turns a pending order into an active client,
	// records the income, consumes the promo code and deletes the order.
	ApproveOrder(ctx context.Context, orderID primitive.ObjectID) (*domain.Client, error)

	// RejectOrder discards a pending order.
	RejectOrder(ctx context.Context, orderID primitive.ObjectID) error
}

// --- Service Implementation ---

type orderService struct {
	orderRepo  repository.OrderRepository
	clientRepo repository.ClientRepository
	planRepo   repository.PricingPlanRepository
	promoRepo  repository.PromoCodeRepository
	incomeRepo repository.TransactionRepository
	txRunner   repository.TxRunner

	now func() time.Time
}

// NewOrderService creates a new instance of orderService.
func NewOrderService(
	orderRepo repository.OrderRepository,
	clientRepo repository.ClientRepository,
	planRepo repository.PricingPlanRepository,
	promoRepo repository.PromoCodeRepository,
	incomeRepo repository.TransactionRepository,
	txRunner repository.TxRunner,
) OrderService {
	return &orderService{
		orderRepo:  orderRepo,
		clientRepo: clientRepo,
		planRepo:   planRepo,
		promoRepo:  promoRepo,
		incomeRepo: incomeRepo,
		txRunner:   txRunner,
		now:        time.Now,
	}
}

// SubmitOrder stages a pending order with a server-computed final price.
func (s *orderService) SubmitOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil || order.FullName == "" || order.PreferredPlan == "" {
		return nil, errors.New("order full name and preferred plan are required")
	}
	if order.SubscriptionDuration <= 0 {
		order.SubscriptionDuration = 1
	}

	plan, err := s.planRepo.GetByName(ctx, order.PreferredPlan)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}

	promoDiscount := 0
	if order.PromoCode != "" {
		order.PromoCode = strings.ToUpper(strings.TrimSpace(order.PromoCode))
		promo, err := s.ValidatePromoCode(ctx, order.PromoCode)
		if err != nil {
			return nil, err
		}
		promoDiscount = promo.DiscountPercentage
	}

	order.FinalPrice = ComputeFinalPrice(plan.Price, order.SubscriptionDuration, promoDiscount)

	orderID, err := s.orderRepo.Create(ctx, order)
	if err != nil {
		return nil, err
	}
	order.ID = orderID
	return order, nil
}

// ValidatePromoCode looks a code up case-insensitively and reports whether it
// is still redeemable. It never mutates the code; consumption happens only
// inside ApproveOrder.
func (s *orderService) ValidatePromoCode(ctx context.Context, code string) (*domain.PromoCode, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, ErrPromoNotFound
	}

	promo, err := s.promoRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPromoNotFound
		}
		return nil, err
	}
	if promo.Status != domain.PromoActive {
		return nil, ErrPromoAlreadyUsed
	}
	return promo, nil
}

func (s *orderService) ListPendingOrders(ctx context.Context) ([]domain.Order, error) {
	return s.orderRepo.ListPending(ctx)
}

// ApproveOrder runs the one multi-step operation in the system as a single
// all-or-nothing unit. The promo code is re-checked inside the transaction:
// the check at form-submission time does not protect against two orders
// redeeming the same code concurrently, this one does.
func (s *orderService) ApproveOrder(ctx context.Context, orderID primitive.ObjectID) (*domain.Client, error) {
	if orderID == primitive.NilObjectID {
		return nil, errors.New("order ID is required")
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	var client *domain.Client
	err = s.txRunner.WithTransaction(ctx, func(txCtx context.Context) error {
		// Re-check the promo code before any write so a concurrently
		// consumed code aborts with no partial client creation.
		if order.PromoCode != "" {
			promo, err := s.promoRepo.GetByCode(txCtx, order.PromoCode)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return ErrPromoNotFound
				}
				return err
			}
			if promo.Status != domain.PromoActive {
				return ErrPromoAlreadyUsed
			}
		}

		months := order.SubscriptionDuration
		if months <= 0 {
			months = 1
		}
		startDate := s.now().UTC()
		endDate := startDate.AddDate(0, months, 0)

		// The ID is generated up front because the membership code is
		// derived from it.
		clientID := primitive.NewObjectID()
		client = &domain.Client{
			ID:             clientID,
			FullName:       order.FullName,
			Email:          order.Email,
			PhoneNumber:    order.PhoneNumber,
			Plan:           order.PreferredPlan,
			StartDate:      startDate,
			EndDate:        endDate,
			Status:         domain.ClientActive,
			MembershipCode: domain.MembershipCodeFromID(clientID),
			PrimaryGoal:    string(order.PrimaryGoal),
			Notes:          order.InjuriesOrNotes,
		}
		if err := s.clientRepo.Create(txCtx, client); err != nil {
			return err
		}

		if order.FinalPrice > 0 {
			txn := &domain.Transaction{
				Description: fmt.Sprintf("Subscription: %s", order.FullName),
				Amount:      order.FinalPrice,
				Date:        startDate,
				ClientID:    &clientID,
			}
			if _, err := s.incomeRepo.Create(txCtx, txn); err != nil {
				return err
			}
		}

		if order.PromoCode != "" {
			if err := s.promoRepo.MarkUsed(txCtx, order.PromoCode, order.ID); err != nil {
				if errors.Is(err, repository.ErrConflict) {
					return ErrPromoAlreadyUsed
				}
				return err
			}
		}

		return s.orderRepo.Delete(txCtx, order.ID)
	})
	if err != nil {
		return nil, err
	}
	return client, nil
}

// RejectOrder deletes a pending order without creating anything.
func (s *orderService) RejectOrder(ctx context.Context, orderID primitive.ObjectID) error {
	if orderID == primitive.NilObjectID {
		return errors.New("order ID is required")
	}
	err := s.orderRepo.Delete(ctx, orderID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrOrderNotFound
	}
	return err
}
