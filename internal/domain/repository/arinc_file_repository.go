package repository

import (
	"context"

	"navdb-service/internal/domain/entity"
)

// ArincFileRepository defines the interface for uploaded file records
type ArincFileRepository interface {
	Create(ctx context.Context, file *entity.ArincFile) error
	GetByID(ctx context.Context, id uint) (*entity.ArincFile, error)
	Update(ctx context.Context, file *entity.ArincFile) error
	List(ctx context.Context) ([]entity.ArincFile, error)
}
