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
	"github.com/ecodeclub/voucherhub/internal/voucher/internal/domain"
	"github.com/ecodeclub/voucherhub/internal/voucher/internal/repository/dao"
)

// ErrVoucherNotFound 体验券不存在或已下架
var ErrVoucherNotFound = errors.New("体验券没找到")

//go:generate mockgen -source=./repository.go -package=repomocks -destination=./mocks/repository.mock.go VoucherRepository
type VoucherRepository interface {
	FindByID(ctx context.Context, id int64) (domain.Voucher, error)
	FindAvailableByID(ctx context.Context, id int64) (domain.Voucher, error)
	List(ctx context.Context, offset, limit int) ([]domain.Voucher, error)
	Total(ctx context.Context) (int64, error)
	Save(ctx context.Context, v domain.Voucher) (int64, error)
	UpdateAvailability(ctx context.Context, id int64, available bool) error
}

func NewVoucherRepository(d dao.VoucherDAO) VoucherRepository {
	return &voucherRepository{dao: d}
}

type voucherRepository struct {
	dao dao.VoucherDAO
}

func (r *voucherRepository) FindByID(ctx context.Context, id int64) (domain.Voucher, error) {
	v, err := r.dao.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, dao.ErrDataNotFound) {
			return domain.Voucher{}, ErrVoucherNotFound
		}
		return domain.Voucher{}, err
	}
	return r.toDomain(v), nil
}

func (r *voucherRepository) FindAvailableByID(ctx context.Context, id int64) (domain.Voucher, error) {
	v, err := r.dao.FindAvailableByID(ctx, id)
	if err != nil {
		if errors.Is(err, dao.ErrDataNotFound) {
			return domain.Voucher{}, ErrVoucherNotFound
		}
		return domain.Voucher{}, err
	}
	return r.toDomain(v), nil
}

func (r *voucherRepository) List(ctx context.Context, offset, limit int) ([]domain.Voucher, error) {
	vs, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(vs, func(idx int, src dao.Voucher) domain.Voucher {
		return r.toDomain(src)
	}), nil
}

func (r *voucherRepository) Total(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *voucherRepository) Save(ctx context.Context, v domain.Voucher) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(v))
}

func (r *voucherRepository) UpdateAvailability(ctx context.Context, id int64, available bool) error {
	return r.dao.UpdateAvailability(ctx, id, available)
}

func (r *voucherRepository) toDomain(v dao.Voucher) domain.Voucher {
	return domain.Voucher{
		ID:          v.Id,
		Name:        v.Nome,
		Description: v.Descricao,
		Price:       v.Preco,
		Available:   v.Disponivel,
		Ctime:       v.Ctime,
		Utime:       v.Utime,
	}
}

func (r *voucherRepository) toEntity(v domain.Voucher) dao.Voucher {
	return dao.Voucher{
		Id:         v.ID,
		Nome:       v.Name,
		Descricao:  v.Description,
		Preco:      v.Price,
		Disponivel: v.Available,
	}
}
