package entity

import (
	"context"

	"github.com/watchearn/backend/pkg/xcontext"
)

func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&User{},
		&Task{},
		&TaskAction{},
		&TaskCompletion{},
		&Profile{},
		&File{},
	)
}
