package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"zentravel/infras/otel"
	"zentravel/infras/postgres"
	"zentravel/internal/domains/schedule/model"
	gDto "zentravel/shared/dto"
	gRepo "zentravel/shared/repository"
)

type Schedule interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ScheduleItem, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ScheduleItem, error)
	GetDistinct(ctx context.Context, columnName string) ([]string, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.ScheduleItem]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Schedule {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.ScheduleItem](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
