// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"

	"github.com/ecodeclub/voucherhub/internal/catalog/internal/domain"
	"github.com/ecodeclub/voucherhub/internal/catalog/internal/repository"
)

//go:generate mockgen -source=./service.go -package=catalogmocks -destination=../../mocks/catalog.mock.go

type Service interface {
	ListExperiences(ctx context.Context) ([]domain.Experience, error)
	ExperienceBySlug(ctx context.Context, slug string) (domain.Experience, error)
	PartnerBySlug(ctx context.Context, slug string) (domain.Partner, error)
	SaveExperience(ctx context.Context, exp domain.Experience) (int64, error)
	SavePartner(ctx context.Context, p domain.Partner) (int64, error)
}

type service struct {
	repo repository.CatalogRepository
}

func NewService(repo repository.CatalogRepository) Service {
	return &service{repo: repo}
}

func (s *service) ListExperiences(ctx context.Context) ([]domain.Experience, error) {
	return s.repo.ListExperiences(ctx)
}

func (s *service) ExperienceBySlug(ctx context.Context, slug string) (domain.Experience, error) {
	return s.repo.ExperienceBySlug(ctx, slug)
}

func (s *service) PartnerBySlug(ctx context.Context, slug string) (domain.Partner, error) {
	return s.repo.PartnerBySlug(ctx, slug)
}

func (s *service) SaveExperience(ctx context.Context, exp domain.Experience) (int64, error) {
	return s.repo.SaveExperience(ctx, exp)
}

func (s *service) SavePartner(ctx context.Context, p domain.Partner) (int64, error) {
	return s.repo.SavePartner(ctx, p)
}
