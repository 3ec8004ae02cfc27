package service

import (
	"context"

	"github.com/umputun/shopscope/pkg/domain"
	"github.com/umputun/shopscope/pkg/repository"
)

// SchedulerService provides unified access to repositories for the scheduler
type SchedulerService struct {
	productRepo *repository.ProductRepository
	settingRepo *repository.SettingRepository
}

// NewSchedulerService creates a new scheduler service
func NewSchedulerService(productRepo *repository.ProductRepository, settingRepo *repository.SettingRepository) *SchedulerService {
	return &SchedulerService{productRepo: productRepo, settingRepo: settingRepo}
}

// Product methods

func (s *SchedulerService) GetUntaggedProducts(ctx context.Context, afterID int64, limit int) ([]*domain.Product, error) {
	return s.productRepo.GetUntaggedProducts(ctx, afterID, limit)
}

func (s *SchedulerService) UpdateProductTags(ctx context.Context, id int64, tags []string) error {
	return s.productRepo.UpdateProductTags(ctx, id, tags)
}

// Setting methods

func (s *SchedulerService) GetSetting(ctx context.Context, key string) (string, error) {
	return s.settingRepo.GetSetting(ctx, key)
}

func (s *SchedulerService) SetSetting(ctx context.Context, key, value string) error {
	return s.settingRepo.SetSetting(ctx, key, value)
}
