package services

import (
	"context"

	"equipment-registry/internal/dto"
	"equipment-registry/internal/repositories"

	"go.uber.org/zap"
)

type UserEquipmentServiceInterface interface {
	CreateUserEquipment(ctx context.Context, ownerID uint64, payload dto.CreateUserEquipmentDTO) (*dto.UserEquipmentDTO, error)
	GetAllUserEquipments(ctx context.Context, ownerID uint64) ([]dto.EnrichedUserEquipmentDTO, error)
	DeleteUserEquipment(ctx context.Context, ownerID uint64, equipmentID uint64) (int64, error)
}

type UserEquipmentService struct {
	userEquipmentRepository repositories.UserEquipmentRepositoryInterface
	logger                  *zap.Logger
}

func NewUserEquipmentService(
	userEquipmentRepository repositories.UserEquipmentRepositoryInterface,
	logger *zap.Logger,
) UserEquipmentServiceInterface {
	return &UserEquipmentService{
		userEquipmentRepository: userEquipmentRepository,
		logger:                  logger,
	}
}

// CreateUserEquipment записывает регистрацию за владельцем из
// аутентифицированного контекста. user_id из тела запроса всегда
// перезаписывается: доверять клиенту здесь нельзя, иначе один пользователь
// сможет регистрировать технику под чужим идентификатором.
func (s *UserEquipmentService) CreateUserEquipment(ctx context.Context, ownerID uint64, payload dto.CreateUserEquipmentDTO) (*dto.UserEquipmentDTO, error) {
	payload.UserID = ownerID

	row, err := s.userEquipmentRepository.CreateUserEquipment(ctx, payload)
	if err != nil {
		s.logger.Error("Ошибка при регистрации техники",
			zap.Uint64("ownerID", ownerID),
			zap.Uint64("equipmentID", payload.EquipmentID),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("Техника зарегистрирована",
		zap.Uint64("ownerID", ownerID),
		zap.Uint64("id", row.ID))
	return row, nil
}

func (s *UserEquipmentService) GetAllUserEquipments(ctx context.Context, ownerID uint64) ([]dto.EnrichedUserEquipmentDTO, error) {
	return s.userEquipmentRepository.GetAllUserEquipments(ctx, ownerID)
}

func (s *UserEquipmentService) DeleteUserEquipment(ctx context.Context, ownerID uint64, equipmentID uint64) (int64, error) {
	deleted, err := s.userEquipmentRepository.DeleteUserEquipment(ctx, ownerID, equipmentID)
	if err != nil {
		return 0, err
	}

	s.logger.Info("Удаление регистраций завершено",
		zap.Uint64("ownerID", ownerID),
		zap.Uint64("equipmentID", equipmentID),
		zap.Int64("deleted", deleted))
	return deleted, nil
}
