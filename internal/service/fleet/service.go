package fleet

import (
	"context"
	"errors"
	"fmt"

	fleetRepo "github.com/m04kA/SMC-CarRentalService/internal/infra/storage/fleet"
	"github.com/m04kA/SMC-CarRentalService/internal/service/fleet/models"
)

// Service сервис для администрирования автопарка
type Service struct {
	fleetRepo FleetRepository
	txManager TransactionManager
	metrics   MetricsRecorder
	logger    Logger
}

// NewService создает новый экземпляр сервиса автопарка
func NewService(
	fleetRepo FleetRepository,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *Service {
	return &Service{
		fleetRepo: fleetRepo,
		txManager: txManager,
		metrics:   metrics,
		logger:    logger,
	}
}

// Create добавляет автомобиль в каталог с новым ID
func (s *Service) Create(ctx context.Context, req *models.CreateCarRequest) (*models.CarResponse, error) {
	s.logger.Info("Create: adding car brand=%s, model=%s, year=%s", req.Brand, req.Model, req.Year)

	car := req.ToDomainCar()
	if err := validateCar(car); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	var created *models.CarResponse
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		stored, err := s.fleetRepo.Create(txCtx, car)
		if err != nil {
			return err
		}
		created = models.FromDomainCar(stored)
		s.metrics.SetFleetSize(s.fleetRepo.Len())
		return nil
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: car added with id=%d", created.ID)
	return created, nil
}

// GetByID получает автомобиль по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.CarResponse, error) {
	var result *models.CarResponse
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		car, err := s.fleetRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		result = models.FromDomainCar(car)
		return nil
	})
	if err != nil {
		return nil, s.translateError("GetByID", id, err)
	}

	return result, nil
}

// List возвращает весь автопарк в порядке добавления
func (s *Service) List(ctx context.Context) (*models.CarListResponse, error) {
	var result *models.CarListResponse
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		cars, err := s.fleetRepo.List(txCtx)
		if err != nil {
			return err
		}
		result = models.FromDomainCarList(cars)
		return nil
	})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d cars", result.Total)
	return result, nil
}

// Update изменяет марку, модель, год и тариф. Календарь бронирований не затрагивается
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateCarRequest) (*models.CarResponse, error) {
	s.logger.Info("Update: updating car id=%d", id)

	var result *models.CarResponse
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		current, err := s.fleetRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		updated := req.ApplyTo(current)
		if err := validateCar(updated); err != nil {
			return err
		}

		stored, err := s.fleetRepo.Update(txCtx, updated)
		if err != nil {
			return err
		}
		result = models.FromDomainCar(stored)
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			s.logger.Warn("Update: validation failed for car id=%d: %v", id, err)
			return nil, err
		}
		return nil, s.translateError("Update", id, err)
	}

	s.logger.Info("Update: car id=%d updated", id)
	return result, nil
}

// Delete удаляет автомобиль из каталога. ID не выдается повторно
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting car id=%d", id)

	var deletedModel string
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		deleted, err := s.fleetRepo.Delete(txCtx, id)
		if err != nil {
			return err
		}
		deletedModel = deleted.Model
		s.metrics.SetFleetSize(s.fleetRepo.Len())
		return nil
	})
	if err != nil {
		return s.translateError("Delete", id, err)
	}

	s.logger.Info("Delete: car id=%d (%s) deleted", id, deletedModel)
	return nil
}

func (s *Service) translateError(op string, id int64, err error) error {
	if errors.Is(err, fleetRepo.ErrCarNotFound) {
		s.logger.Warn("%s: car id=%d not found", op, id)
		return ErrCarNotFound
	}
	s.logger.Error("%s: repository error for car id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
