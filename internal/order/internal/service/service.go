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
	"fmt"

	"github.com/ecodeclub/voucherhub/internal/order/internal/domain"
	"github.com/ecodeclub/voucherhub/internal/order/internal/repository"
	"github.com/ecodeclub/voucherhub/internal/voucher"
)

//go:generate mockgen -source=./service.go -package=ordermocks -destination=../../mocks/order.mock.go Service
type Service interface {
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	// FindOrderBySessionID 按支付会话ID查订单,带体验券快照
	FindOrderBySessionID(ctx context.Context, sessionID string) (domain.Order, error)
	// MarkOrderPaid 幂等推进 Pending -> Paid。
	// 回调重复投递时订单可能已经是已支付状态,
	// 这时返回库里已有的兑换码并且 alreadyPaid 为 true,
	// 调用方不应该再生成新码或者重发通知
	MarkOrderPaid(ctx context.Context, orderID int64, code, paymentIntentID string) (redemptionCode string, alreadyPaid bool, err error)
}

func NewService(repo repository.OrderRepository, voucherSvc voucher.Service) Service {
	return &service{repo: repo, voucherSvc: voucherSvc}
}

type service struct {
	repo       repository.OrderRepository
	voucherSvc voucher.Service
}

func (s *service) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	// 创建前校验体验券还在售
	if _, err := s.voucherSvc.FindAvailableByID(ctx, order.VoucherID); err != nil {
		return domain.Order{}, fmt.Errorf("体验券不可售: %w", err)
	}
	return s.repo.CreateOrder(ctx, order)
}

func (s *service) FindOrderBySessionID(ctx context.Context, sessionID string) (domain.Order, error) {
	order, err := s.repo.FindOrderBySessionID(ctx, sessionID)
	if err != nil {
		return domain.Order{}, err
	}
	// 快照回查不过滤可售状态,已下架的券也要能完成支付
	v, err := s.voucherSvc.FindByID(ctx, order.VoucherID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("回查体验券失败: %w", err)
	}
	order.Voucher = domain.Voucher{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Price:       v.Price,
	}
	return order, nil
}

func (s *service) MarkOrderPaid(ctx context.Context, orderID int64, code, paymentIntentID string) (string, bool, error) {
	updated, err := s.repo.MarkOrderPaid(ctx, orderID, code, paymentIntentID)
	if err != nil {
		return "", false, err
	}
	if updated {
		return code, false, nil
	}
	// 没写进去,重读订单确认当前状态
	order, err := s.repo.FindOrderByID(ctx, orderID)
	if err != nil {
		return "", false, err
	}
	if order.Status != domain.StatusPaid {
		return "", false, fmt.Errorf("订单状态非法: %d", order.Status.ToUint8())
	}
	return order.RedemptionCode, true, nil
}
