package usecase_test

import (
	"context"

	"cost-item-service/internal/costitem"
	repo "cost-item-service/internal/costitem/repository"
)

// mockLogger satisfies log.Logger for tests.
type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                 {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Info(ctx context.Context, args ...any)                  {}
func (mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Warn(ctx context.Context, args ...any)                  {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Error(ctx context.Context, args ...any)                 {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...any) {}

// mockRepository implements repository.Repository with per-test functions.
type mockRepository struct {
	listFunc   func() ([]costitem.CostItem, error)
	filterFunc func(opt repo.FilterCostItemsOptions) ([]costitem.CostItem, error)
	getFunc    func(id int64) (costitem.CostItem, error)
	createFunc func(opt repo.CreateCostItemOptions) (costitem.CostItem, error)
	updateFunc func(opt repo.UpdateCostItemOptions) (int64, error)
	deleteFunc func(id int64) (int64, error)
}

func (m *mockRepository) ListCostItems(ctx context.Context) ([]costitem.CostItem, error) {
	if m.listFunc == nil {
		return nil, nil
	}
	return m.listFunc()
}

func (m *mockRepository) FilterCostItems(ctx context.Context, opt repo.FilterCostItemsOptions) ([]costitem.CostItem, error) {
	if m.filterFunc == nil {
		return nil, nil
	}
	return m.filterFunc(opt)
}

func (m *mockRepository) GetCostItem(ctx context.Context, id int64) (costitem.CostItem, error) {
	if m.getFunc == nil {
		return costitem.CostItem{}, nil
	}
	return m.getFunc(id)
}

func (m *mockRepository) CreateCostItem(ctx context.Context, opt repo.CreateCostItemOptions) (costitem.CostItem, error) {
	if m.createFunc == nil {
		return costitem.CostItem{}, nil
	}
	return m.createFunc(opt)
}

func (m *mockRepository) UpdateCostItem(ctx context.Context, opt repo.UpdateCostItemOptions) (int64, error) {
	if m.updateFunc == nil {
		return 0, nil
	}
	return m.updateFunc(opt)
}

func (m *mockRepository) DeleteCostItem(ctx context.Context, id int64) (int64, error) {
	if m.deleteFunc == nil {
		return 0, nil
	}
	return m.deleteFunc(id)
}
