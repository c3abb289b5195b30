package repository

import (
	"context"

	"navdb-service/internal/domain/entity"
	"navdb-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormArincFileRepository implements the ArincFileRepository interface
type GormArincFileRepository struct {
	db *gorm.DB
}

// NewGormArincFileRepository creates a new GORM file repository
func NewGormArincFileRepository(db *gorm.DB) repository.ArincFileRepository {
	return &GormArincFileRepository{
		db: db,
	}
}

// Create persists a new uploaded file record.
func (r *GormArincFileRepository) Create(ctx context.Context, file *entity.ArincFile) error {
	return r.db.WithContext(ctx).Create(file).Error
}

// GetByID loads a file record by primary key.
func (r *GormArincFileRepository) GetByID(ctx context.Context, id uint) (*entity.ArincFile, error) {
	var file entity.ArincFile
	if err := r.db.WithContext(ctx).First(&file, id).Error; err != nil {
		return nil, err
	}
	return &file, nil
}

// Update persists the mutable fields of a file record.
func (r *GormArincFileRepository) Update(ctx context.Context, file *entity.ArincFile) error {
	return r.db.WithContext(ctx).Save(file).Error
}

// List returns all file records, newest upload first.
func (r *GormArincFileRepository) List(ctx context.Context) ([]entity.ArincFile, error) {
	var files []entity.ArincFile
	err := r.db.WithContext(ctx).Order("uploaded_at DESC").Find(&files).Error
	return files, err
}
