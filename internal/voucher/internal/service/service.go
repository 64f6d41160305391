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

	"github.com/ecodeclub/voucherhub/internal/voucher/internal/domain"
	"github.com/ecodeclub/voucherhub/internal/voucher/internal/repository"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./service.go -package=vouchermocks -destination=../../mocks/voucher.mock.go Service
type Service interface {
	// FindAvailableByID 只返回可售状态的体验券,
	// 已下架的和不存在的一视同仁
	FindAvailableByID(ctx context.Context, id int64) (domain.Voucher, error)
	// FindByID 不过滤可售状态,订单侧回查快照用
	FindByID(ctx context.Context, id int64) (domain.Voucher, error)
	List(ctx context.Context, offset, limit int) ([]domain.Voucher, int64, error)
	Save(ctx context.Context, v domain.Voucher) (int64, error)
	UpdateAvailability(ctx context.Context, id int64, available bool) error
}

func NewService(repo repository.VoucherRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.VoucherRepository
}

func (s *service) FindAvailableByID(ctx context.Context, id int64) (domain.Voucher, error) {
	return s.repo.FindAvailableByID(ctx, id)
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Voucher, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Voucher, int64, error) {
	var (
		eg    errgroup.Group
		vs    []domain.Voucher
		total int64
	)
	eg.Go(func() error {
		var err error
		vs, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Total(ctx)
		return err
	})
	return vs, total, eg.Wait()
}

func (s *service) Save(ctx context.Context, v domain.Voucher) (int64, error) {
	return s.repo.Save(ctx, v)
}

func (s *service) UpdateAvailability(ctx context.Context, id int64, available bool) error {
	return s.repo.UpdateAvailability(ctx, id, available)
}
