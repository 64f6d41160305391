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

package repository

import (
	"context"
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/voucherhub/internal/catalog/internal/domain"
	"github.com/ecodeclub/voucherhub/internal/catalog/internal/repository/cache"
	"github.com/ecodeclub/voucherhub/internal/catalog/internal/repository/dao"
	"github.com/ecodeclub/voucherhub/internal/pkg/i18n"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrExperienceNotFound = errors.New("体验类目不存在")
	ErrPartnerNotFound    = errors.New("合作方不存在")
)

type CatalogRepository interface {
	ListExperiences(ctx context.Context) ([]domain.Experience, error)
	ExperienceBySlug(ctx context.Context, slug string) (domain.Experience, error)
	PartnerBySlug(ctx context.Context, slug string) (domain.Partner, error)
	SaveExperience(ctx context.Context, exp domain.Experience) (int64, error)
	SavePartner(ctx context.Context, p domain.Partner) (int64, error)
}

type catalogRepository struct {
	dao   dao.CatalogDAO
	cache cache.CatalogCache
	l     *elog.Component
}

func NewCatalogRepository(d dao.CatalogDAO, c cache.CatalogCache) CatalogRepository {
	return &catalogRepository{
		dao:   d,
		cache: c,
		l:     elog.DefaultLogger,
	}
}

func (r *catalogRepository) ListExperiences(ctx context.Context) ([]domain.Experience, error) {
	exps, err := r.cache.GetExperiences(ctx)
	if err == nil {
		return exps, nil
	}
	if !errors.Is(err, cache.ErrCatalogNotCached) {
		// 缓存故障退化成直查数据库
		r.l.Error("查询类目列表缓存失败", elog.FieldErr(err))
	}
	exps, err = r.listFromDB(ctx)
	if err != nil {
		return nil, err
	}
	if err := r.cache.SetExperiences(ctx, exps); err != nil {
		r.l.Error("回填类目列表缓存失败", elog.FieldErr(err))
	}
	return exps, nil
}

func (r *catalogRepository) ExperienceBySlug(ctx context.Context, slug string) (domain.Experience, error) {
	exp, err := r.cache.GetExperience(ctx, slug)
	if err == nil {
		return exp, nil
	}
	if !errors.Is(err, cache.ErrCatalogNotCached) {
		r.l.Error("查询类目缓存失败",
			elog.String("slug", slug), elog.FieldErr(err))
	}
	entity, err := r.dao.FindExperienceBySlug(ctx, slug)
	if errors.Is(err, dao.ErrDataNotFound) {
		return domain.Experience{}, ErrExperienceNotFound
	}
	if err != nil {
		return domain.Experience{}, err
	}
	partners, err := r.dao.PartnersByExperienceIDs(ctx, []int64{entity.Id})
	if err != nil {
		return domain.Experience{}, err
	}
	exp = toDomainExperience(entity, partners)
	if err := r.cache.SetExperience(ctx, exp); err != nil {
		r.l.Error("回填类目缓存失败",
			elog.String("slug", slug), elog.FieldErr(err))
	}
	return exp, nil
}

func (r *catalogRepository) PartnerBySlug(ctx context.Context, slug string) (domain.Partner, error) {
	entity, err := r.dao.FindPartnerBySlug(ctx, slug)
	if errors.Is(err, dao.ErrDataNotFound) {
		return domain.Partner{}, ErrPartnerNotFound
	}
	if err != nil {
		return domain.Partner{}, err
	}
	return toDomainPartner(entity), nil
}

func (r *catalogRepository) SaveExperience(ctx context.Context, exp domain.Experience) (int64, error) {
	id, err := r.dao.SaveExperience(ctx, toEntityExperience(exp))
	if err != nil {
		return 0, err
	}
	if err := r.cache.Clear(ctx, exp.Slug); err != nil {
		r.l.Error("失效类目缓存失败",
			elog.String("slug", exp.Slug), elog.FieldErr(err))
	}
	return id, nil
}

func (r *catalogRepository) SavePartner(ctx context.Context, p domain.Partner) (int64, error) {
	exp, err := r.dao.FindExperienceByID(ctx, p.ExperienceID)
	if errors.Is(err, dao.ErrDataNotFound) {
		return 0, ErrExperienceNotFound
	}
	if err != nil {
		return 0, err
	}
	id, err := r.dao.SavePartner(ctx, toEntityPartner(p))
	if err != nil {
		return 0, err
	}
	if err := r.cache.Clear(ctx, exp.Slug); err != nil {
		r.l.Error("失效类目缓存失败",
			elog.String("slug", exp.Slug), elog.FieldErr(err))
	}
	return id, nil
}

func (r *catalogRepository) listFromDB(ctx context.Context) ([]domain.Experience, error) {
	entities, err := r.dao.ListExperiences(ctx)
	if err != nil {
		return nil, err
	}
	ids := slice.Map(entities, func(idx int, src dao.Experience) int64 {
		return src.Id
	})
	partners, err := r.dao.PartnersByExperienceIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	grouped := make(map[int64][]dao.Partner, len(entities))
	for _, p := range partners {
		grouped[p.ExperienceId] = append(grouped[p.ExperienceId], p)
	}
	return slice.Map(entities, func(idx int, src dao.Experience) domain.Experience {
		return toDomainExperience(src, grouped[src.Id])
	}), nil
}

func toDomainExperience(entity dao.Experience, partners []dao.Partner) domain.Experience {
	return domain.Experience{
		ID:   entity.Id,
		Slug: entity.Slug,
		Title: i18n.Text{
			EN: entity.TitleEn,
			PT: entity.TitlePt,
		},
		Badge: i18n.Text{
			EN: entity.BadgeEn,
			PT: entity.BadgePt,
		},
		Description: i18n.Text{
			EN: entity.DescriptionEn,
			PT: entity.DescriptionPt,
		},
		Partners: slice.Map(partners, func(idx int, src dao.Partner) domain.Partner {
			return toDomainPartner(src)
		}),
		Ctime: entity.Ctime,
		Utime: entity.Utime,
	}
}

func toDomainPartner(entity dao.Partner) domain.Partner {
	return domain.Partner{
		ID:            entity.Id,
		ExperienceID:  entity.ExperienceId,
		Slug:          entity.Slug,
		Name:          entity.Name,
		Location:      entity.Location,
		PriceOriginal: entity.PriceOriginal,
		PriceDiscount: entity.PriceDiscount,
		Savings:       entity.Savings,
		DiscountLabel: entity.DiscountLabel,
		PromoCode:     entity.PromoCode,
		OfficialURL:   entity.OfficialUrl,
		Images:        entity.Images.Val,
		Icon:          entity.Icon,
		DetailedDescription: i18n.Text{
			EN: entity.DetailedDescriptionEn,
			PT: entity.DetailedDescriptionPt,
		},
		Ctime: entity.Ctime,
		Utime: entity.Utime,
	}
}

func toEntityExperience(exp domain.Experience) dao.Experience {
	return dao.Experience{
		Id:            exp.ID,
		Slug:          exp.Slug,
		TitleEn:       exp.Title.EN,
		TitlePt:       exp.Title.PT,
		BadgeEn:       exp.Badge.EN,
		BadgePt:       exp.Badge.PT,
		DescriptionEn: exp.Description.EN,
		DescriptionPt: exp.Description.PT,
	}
}

func toEntityPartner(p domain.Partner) dao.Partner {
	return dao.Partner{
		Id:            p.ID,
		ExperienceId:  p.ExperienceID,
		Slug:          p.Slug,
		Name:          p.Name,
		Location:      p.Location,
		PriceOriginal: p.PriceOriginal,
		PriceDiscount: p.PriceDiscount,
		Savings:       p.Savings,
		DiscountLabel: p.DiscountLabel,
		PromoCode:     p.PromoCode,
		OfficialUrl:   p.OfficialURL,
		Images: sqlx.JsonColumn[[]string]{
			Val:   p.Images,
			Valid: len(p.Images) != 0,
		},
		Icon:                  p.Icon,
		DetailedDescriptionEn: p.DetailedDescription.EN,
		DetailedDescriptionPt: p.DetailedDescription.PT,
	}
}
