package service

import (
	"context"
	"errors"
	"strings"

	"akramfit/coaching-app/internal/domain"
	"akramfit/coaching-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrPromoCodeExists  = errors.New("a promo code with this code already exists")
	ErrCatalogNotFound  = errors.New("catalog item not found")
	ErrPlanNameConflict = errors.New("a plan with this name already exists")
)

// CatalogService manages the admin-edited, read-mostly collections: pricing
// plans, promo codes, gallery items and achievements.
type CatalogService interface {
	// Pricing
	CreatePlan(ctx context.Context, plan *domain.PricingPlan) (*domain.PricingPlan, error)
	ListPlans(ctx context.Context) ([]domain.PricingPlan, error)
	UpdatePlan(ctx context.Context, plan *domain.PricingPlan) error
	DeletePlan(ctx context.Context, id primitive.ObjectID) error

	// Promo codes
	CreatePromoCode(ctx context.Context, code string, discountPercentage int) (*domain.PromoCode, error)
	ListPromoCodes(ctx context.Context) ([]domain.PromoCode, error)
	DeletePromoCode(ctx context.Context, id primitive.ObjectID) error

	// Gallery
	CreateGalleryItem(ctx context.Context, item *domain.GalleryItem) (*domain.GalleryItem, error)
	ListGallery(ctx context.Context) ([]domain.GalleryItem, error)
	UpdateGalleryItem(ctx context.Context, item *domain.GalleryItem) error
	DeleteGalleryItem(ctx context.Context, id primitive.ObjectID) error

	// Achievements
	CreateAchievement(ctx context.Context, item *domain.Achievement) (*domain.Achievement, error)
	ListAchievements(ctx context.Context) ([]domain.Achievement, error)
	UpdateAchievement(ctx context.Context, item *domain.Achievement) error
	DeleteAchievement(ctx context.Context, id primitive.ObjectID) error
}

// --- Service Implementation ---

type catalogService struct {
	planRepo        repository.PricingPlanRepository
	promoRepo       repository.PromoCodeRepository
	galleryRepo     repository.GalleryRepository
	achievementRepo repository.AchievementRepository
}

// NewCatalogService creates a new instance of catalogService.
func NewCatalogService(
	planRepo repository.PricingPlanRepository,
	promoRepo repository.PromoCodeRepository,
	galleryRepo repository.GalleryRepository,
	achievementRepo repository.AchievementRepository,
) CatalogService {
	return &catalogService{
		planRepo:        planRepo,
		promoRepo:       promoRepo,
		galleryRepo:     galleryRepo,
		achievementRepo: achievementRepo,
	}
}

// === Pricing ===

func (s *catalogService) CreatePlan(ctx context.Context, plan *domain.PricingPlan) (*domain.PricingPlan, error) {
	planID, err := s.planRepo.Create(ctx, plan)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrPlanNameConflict
		}
		return nil, err
	}
	plan.ID = planID
	return plan, nil
}

func (s *catalogService) ListPlans(ctx context.Context) ([]domain.PricingPlan, error) {
	return s.planRepo.List(ctx)
}

func (s *catalogService) UpdatePlan(ctx context.Context, plan *domain.PricingPlan) error {
	err := s.planRepo.Update(ctx, plan)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrCatalogNotFound
	}
	return err
}

func (s *catalogService) DeletePlan(ctx context.Context, id primitive.ObjectID) error {
	err := s.planRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrCatalogNotFound
	}
	return err
}

// === Promo codes ===

func (s *catalogService) CreatePromoCode(ctx context.Context, code string, discountPercentage int) (*domain.PromoCode, error) {
	promo := &domain.PromoCode{
		Code:               strings.ToUpper(strings.TrimSpace(code)),
		DiscountPercentage: discountPercentage,
	}
	promoID, err := s.promoRepo.Create(ctx, promo)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrPromoCodeExists
		}
		return nil, err
	}
	promo.ID = promoID
	return promo, nil
}

func (s *catalogService) ListPromoCodes(ctx context.Context) ([]domain.PromoCode, error) {
	return s.promoRepo.List(ctx)
}

func (s *catalogService) DeletePromoCode(ctx context.Context, id primitive.ObjectID) error {
	err := s.promoRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrCatalogNotFound
	}
	return err
}

// === Gallery ===

func (s *catalogService) CreateGalleryItem(ctx context.Context, item *domain.GalleryItem) (*domain.GalleryItem, error) {
	itemID, err := s.galleryRepo.Create(ctx, item)
	if err != nil {
		return nil, err
	}
	item.ID = itemID
	return item, nil
}

func (s *catalogService) ListGallery(ctx context.Context) ([]domain.GalleryItem, error) {
	return s.galleryRepo.List(ctx)
}

func (s *catalogService) UpdateGalleryItem(ctx context.Context, item *domain.GalleryItem) error {
	err := s.galleryRepo.Update(ctx, item)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrCatalogNotFound
	}
	return err
}

func (s *catalogService) DeleteGalleryItem(ctx context.Context, id primitive.ObjectID) error {
	err := s.galleryRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrCatalogNotFound
	}
	return err
}

// === Achievements ===

func (s *catalogService) CreateAchievement(ctx context.Context, item *domain.Achievement) (*domain.Achievement, error) {
	itemID, err := s.achievementRepo.Create(ctx, item)
	if err != nil {
		return nil, err
	}
	item.ID = itemID
	return item, nil
}

func (s *catalogService) ListAchievements(ctx context.Context) ([]domain.Achievement, error) {
	return s.achievementRepo.List(ctx)
}

func (s *catalogService) UpdateAchievement(ctx context.Context, item *domain.Achievement) error {
	err := s.achievementRepo.Update(ctx, item)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrCatalogNotFound
	}
	return err
}

func (s *catalogService) DeleteAchievement(ctx context.Context, id primitive.ObjectID) error {
	err := s.achievementRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrCatalogNotFound
	}
	return err
}
