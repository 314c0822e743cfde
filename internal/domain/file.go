package domain

import (
	"context"

	"github.com/google/uuid"
	"github.com/watchearn/backend/internal/common"
	"github.com/watchearn/backend/internal/entity"
	"github.com/watchearn/backend/internal/model"
	"github.com/watchearn/backend/internal/repository"
	"github.com/watchearn/backend/pkg/errorx"
	"github.com/watchearn/backend/pkg/storage"
	"github.com/watchearn/backend/pkg/xcontext"
)

type FileDomain interface {
	UploadImage(context.Context, *model.UploadImageRequest) (*model.UploadImageResponse, error)
}

type fileDomain struct {
	fileRepo repository.FileRepository
	storage  storage.Storage
}

func NewFileDomain(fileRepo repository.FileRepository, storage storage.Storage) *fileDomain {
	return &fileDomain{
		fileRepo: fileRepo,
		storage:  storage,
	}
}

func (d *fileDomain) UploadImage(
	ctx context.Context, req *model.UploadImageRequest,
) (*model.UploadImageResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	resp, err := common.ProcessImage(ctx, d.storage, "image")
	if err != nil {
		return nil, err
	}

	files := make([]*entity.File, 0, len(resp))
	for _, obj := range resp {
		files = append(files, &entity.File{
			Base:      entity.Base{ID: uuid.NewString()},
			Name:      obj.FileName,
			Url:       obj.Url,
			CreatedBy: userID,
		})
	}

	if err := d.fileRepo.BulkInsert(ctx, files); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot save files: %v", err)
		return nil, errorx.Unknown
	}

	// The first object is the full size image.
	return &model.UploadImageResponse{Url: resp[0].Url}, nil
}
