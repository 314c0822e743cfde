package repository

import (
	"context"

	"github.com/watchearn/backend/internal/entity"
	"github.com/watchearn/backend/pkg/xcontext"
)

type FileRepository interface {
	BulkInsert(ctx context.Context, data []*entity.File) error
}

type fileRepository struct{}

func NewFileRepository() *fileRepository {
	return &fileRepository{}
}

func (r *fileRepository) BulkInsert(ctx context.Context, data []*entity.File) error {
	return xcontext.DB(ctx).Create(data).Error
}
