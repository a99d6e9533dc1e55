package http

import (
	"github.com/gin-gonic/gin"

	"cost-item-service/internal/costitem"
	"cost-item-service/pkg/log"
)

// Handler is the public interface for the cost item HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Filter(c *gin.Context)
	Detail(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc costitem.UseCase
}

// New creates a new HTTP handler for the cost item domain.
func New(l log.Logger, uc costitem.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
