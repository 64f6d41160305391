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

	"github.com/ecodeclub/voucherhub/internal/order/internal/domain"
	"github.com/ecodeclub/voucherhub/internal/order/internal/repository/dao"
)

var (
	// ErrOrderNotFound 订单不存在。
	// 支付回调重试也查不出来,调用方应该给出定论式的响应
	ErrOrderNotFound = errors.New("订单没找到")
	// ErrDuplicatedOrder 同一个支付会话重复建单
	ErrDuplicatedOrder = dao.ErrDuplicatedOrder
)

//go:generate mockgen -source=./repository.go -package=repomocks -destination=./mocks/repository.mock.go OrderRepository
type OrderRepository interface {
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	FindOrderByID(ctx context.Context, id int64) (domain.Order, error)
	FindOrderBySessionID(ctx context.Context, sessionID string) (domain.Order, error)
	// MarkOrderPaid 返回 false 表示订单已不在待支付状态,没有发生写入
	MarkOrderPaid(ctx context.Context, id int64, code, paymentIntentID string) (bool, error)
}

func NewRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{d: d}
}

type orderRepository struct {
	d dao.OrderDAO
}

func (o *orderRepository) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	order.Status = domain.StatusPending
	oid, err := o.d.Create(ctx, o.toEntity(order))
	if err != nil {
		return domain.Order{}, err
	}
	order.ID = oid
	return order, nil
}

func (o *orderRepository) FindOrderByID(ctx context.Context, id int64) (domain.Order, error) {
	order, err := o.d.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, dao.ErrDataNotFound) {
			return domain.Order{}, ErrOrderNotFound
		}
		return domain.Order{}, err
	}
	return o.toDomain(order), nil
}

func (o *orderRepository) FindOrderBySessionID(ctx context.Context, sessionID string) (domain.Order, error) {
	order, err := o.d.FindByCheckoutSessionID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, dao.ErrDataNotFound) {
			return domain.Order{}, ErrOrderNotFound
		}
		return domain.Order{}, err
	}
	return o.toDomain(order), nil
}

func (o *orderRepository) MarkOrderPaid(ctx context.Context, id int64, code, paymentIntentID string) (bool, error) {
	rows, err := o.d.MarkPaid(ctx, id, code, paymentIntentID)
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (o *orderRepository) toEntity(order domain.Order) dao.Order {
	return dao.Order{
		Id:                      order.ID,
		VoucherId:               order.VoucherID,
		EmailUsuario:            order.BuyerEmail,
		StripeCheckoutSessionId: order.CheckoutSessionID,
		Status:                  order.Status.ToUint8(),
	}
}

func (o *orderRepository) toDomain(order dao.Order) domain.Order {
	return domain.Order{
		ID:                order.Id,
		VoucherID:         order.VoucherId,
		BuyerEmail:        order.EmailUsuario,
		CheckoutSessionID: order.StripeCheckoutSessionId,
		PaymentIntentID:   order.StripePaymentIntentId.String,
		RedemptionCode:    order.CodigoVoucherGerado.String,
		Status:            domain.OrderStatus(order.Status),
		Ctime:             order.Ctime,
		Utime:             order.Utime,
	}
}
