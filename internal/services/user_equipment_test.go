package services

import (
	"context"
	"testing"

	"equipment-registry/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUserEquipmentRepository struct {
	lastCreate dto.CreateUserEquipmentDTO
	deleteArgs [2]uint64
	deleted    int64
}

func (f *fakeUserEquipmentRepository) CreateUserEquipment(ctx context.Context, payload dto.CreateUserEquipmentDTO) (*dto.UserEquipmentDTO, error) {
	f.lastCreate = payload
	return &dto.UserEquipmentDTO{
		ID:                 1,
		UserID:             payload.UserID,
		EquipmentID:        payload.EquipmentID,
		EquipmentRegNumber: payload.EquipmentRegNumber,
	}, nil
}

func (f *fakeUserEquipmentRepository) GetAllUserEquipments(ctx context.Context, userID uint64) ([]dto.EnrichedUserEquipmentDTO, error) {
	return []dto.EnrichedUserEquipmentDTO{}, nil
}

func (f *fakeUserEquipmentRepository) DeleteUserEquipment(ctx context.Context, userID uint64, equipmentID uint64) (int64, error) {
	f.deleteArgs = [2]uint64{userID, equipmentID}
	return f.deleted, nil
}

func TestCreateUserEquipment_OwnerTakenFromContextNotPayload(t *testing.T) {
	repo := &fakeUserEquipmentRepository{}
	svc := NewUserEquipmentService(repo, zap.NewNop())

	payload := dto.CreateUserEquipmentDTO{
		UserID:             99, // подделка в теле запроса
		EquipmentID:        5,
		EquipmentRegNumber: "KA01AB1234",
	}

	created, err := svc.CreateUserEquipment(context.Background(), 42, payload)
	require.NoError(t, err)

	assert.Equal(t, uint64(42), repo.lastCreate.UserID, "владелец должен быть взят из контекста")
	assert.Equal(t, uint64(42), created.UserID)
}

func TestDeleteUserEquipment_PassesOwnerAndEquipment(t *testing.T) {
	repo := &fakeUserEquipmentRepository{deleted: 1}
	svc := NewUserEquipmentService(repo, zap.NewNop())

	deleted, err := svc.DeleteUserEquipment(context.Background(), 42, 5)
	require.NoError(t, err)

	assert.Equal(t, int64(1), deleted)
	assert.Equal(t, [2]uint64{42, 5}, repo.deleteArgs)
}

func TestDeleteUserEquipment_ZeroRowsIsNotAnError(t *testing.T) {
	repo := &fakeUserEquipmentRepository{deleted: 0}
	svc := NewUserEquipmentService(repo, zap.NewNop())

	deleted, err := svc.DeleteUserEquipment(context.Background(), 42, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
}
