package list_services

import (
	"context"

	"github.com/salonix/booking-service/internal/service/catalog"
)

type CatalogService interface {
	List(ctx context.Context) (*catalog.ServiceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
