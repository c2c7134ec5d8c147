package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/salonix/booking-service/internal/domain"
)

// ErrInternal возвращается при внутренних ошибках сервиса
var ErrInternal = errors.New("service: internal error")

// ServiceItem услуга каталога в ответе
type ServiceItem struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceItem `json:"services"`
}

// Service сервис каталога услуг салона
type Service struct {
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{serviceRepo: serviceRepo, logger: logger}
}

// List возвращает все активные услуги каталога
func (s *Service) List(ctx context.Context) (*ServiceListResponse, error) {
	services, err := s.serviceRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := &ServiceListResponse{Services: make([]ServiceItem, 0, len(services))}
	for _, svc := range services {
		resp.Services = append(resp.Services, toServiceItem(svc))
	}

	s.logger.Info("List: fetched %d services", len(resp.Services))
	return resp, nil
}

func toServiceItem(s domain.SalonService) ServiceItem {
	return ServiceItem{
		ID:              s.ID,
		Name:            s.Name,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
	}
}
