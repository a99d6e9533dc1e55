package http_test

import (
	"context"

	"github.com/gin-gonic/gin"

	"cost-item-service/internal/costitem"
	costItemHTTP "cost-item-service/internal/costitem/delivery/http"
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

// mockUseCase implements costitem.UseCase with per-test functions.
type mockUseCase struct {
	listFunc   func() (costitem.ListCostItemsOutput, error)
	filterFunc func(input costitem.FilterCostItemsInput) (costitem.ListCostItemsOutput, error)
	detailFunc func(id int64) (costitem.DetailCostItemOutput, error)
	createFunc func(input costitem.CreateCostItemInput) (costitem.CreateCostItemOutput, error)
	updateFunc func(input costitem.UpdateCostItemInput) (costitem.UpdateCostItemOutput, error)
	deleteFunc func(id int64) (costitem.DeleteCostItemOutput, error)
}

func (m *mockUseCase) List(ctx context.Context) (costitem.ListCostItemsOutput, error) {
	if m.listFunc == nil {
		return costitem.ListCostItemsOutput{}, nil
	}
	return m.listFunc()
}

func (m *mockUseCase) Filter(ctx context.Context, input costitem.FilterCostItemsInput) (costitem.ListCostItemsOutput, error) {
	if m.filterFunc == nil {
		return costitem.ListCostItemsOutput{}, nil
	}
	return m.filterFunc(input)
}

func (m *mockUseCase) Detail(ctx context.Context, id int64) (costitem.DetailCostItemOutput, error) {
	if m.detailFunc == nil {
		return costitem.DetailCostItemOutput{}, costitem.ErrNotFound
	}
	return m.detailFunc(id)
}

func (m *mockUseCase) Create(ctx context.Context, input costitem.CreateCostItemInput) (costitem.CreateCostItemOutput, error) {
	if m.createFunc == nil {
		return costitem.CreateCostItemOutput{}, nil
	}
	return m.createFunc(input)
}

func (m *mockUseCase) Update(ctx context.Context, input costitem.UpdateCostItemInput) (costitem.UpdateCostItemOutput, error) {
	if m.updateFunc == nil {
		return costitem.UpdateCostItemOutput{}, costitem.ErrNotFound
	}
	return m.updateFunc(input)
}

func (m *mockUseCase) Delete(ctx context.Context, id int64) (costitem.DeleteCostItemOutput, error) {
	if m.deleteFunc == nil {
		return costitem.DeleteCostItemOutput{}, nil
	}
	return m.deleteFunc(id)
}

// newTestRouter builds a gin engine with the cost item routes mounted on a
// mock use case.
func newTestRouter(uc costitem.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	costItemHTTP.RegisterRoutes(engine.Group(""), costItemHTTP.New(mockLogger{}, uc))
	return engine
}
