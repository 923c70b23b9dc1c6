package usecase

import (
	"context"

	"SecureBank/internal/domain/models"
	"SecureBank/internal/domain/repository"
	"SecureBank/internal/domain/service"
	"SecureBank/internal/messages"
)

var modelInfoFallbacks = map[string]string{
	service.EndpointModelInfo: messages.ModelInfoFailed,
}

type ModelInfoUsecase struct {
	api     service.BackendAPI
	cat     *messages.Catalog
	metrics repository.Metrics
}

func NewModelInfoUsecase(api service.BackendAPI, cat *messages.Catalog, m repository.Metrics) *ModelInfoUsecase {
	return &ModelInfoUsecase{api: api, cat: cat, metrics: m}
}

func (u *ModelInfoUsecase) Fetch(ctx context.Context) (models.ModelInfo, error) {
	info, err := u.api.ModelInfo(ctx)
	if err != nil {
		return models.ModelInfo{}, pageFailure(err, u.cat, modelInfoFallbacks, messages.ModelInfoGeneric)
	}
	info.Normalize()
	return info, nil
}

func (u *ModelInfoUsecase) Page() *Machine[models.ModelInfo] {
	return NewMachine(PageModelInfo, u.Fetch, u.metrics, u.cat.T(messages.ModelInfoGeneric))
}
