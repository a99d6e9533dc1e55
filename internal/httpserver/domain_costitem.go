package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	costItemHTTP "cost-item-service/internal/costitem/delivery/http"
	costItemRepo "cost-item-service/internal/costitem/repository/postgres"
	costItemUC "cost-item-service/internal/costitem/usecase"
)

// setupCostItemDomain initializes the cost item domain and registers its
// routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.postgresDB, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(rg, h)
func (srv *HTTPServer) setupCostItemDomain(ctx context.Context, rg *gin.RouterGroup) error {
	// 1. Repository
	repo := costItemRepo.New(srv.postgresDB, srv.l)

	// 2. UseCase
	uc := costItemUC.New(repo, srv.l)

	// 3. HTTP Handler
	h := costItemHTTP.New(srv.l, uc)

	// 4. Routes: registers /cost_items
	costItemHTTP.RegisterRoutes(rg, h)

	srv.l.Infof(ctx, "Cost item domain registered")
	return nil
}
