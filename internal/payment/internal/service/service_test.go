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
	"errors"
	"strings"
	"testing"

	"github.com/ecodeclub/voucherhub/internal/email"
	emailmocks "github.com/ecodeclub/voucherhub/internal/email/mocks"
	"github.com/ecodeclub/voucherhub/internal/order"
	ordermocks "github.com/ecodeclub/voucherhub/internal/order/mocks"
	"github.com/ecodeclub/voucherhub/internal/payment/internal/domain"
	"github.com/ecodeclub/voucherhub/internal/pkg/redemption"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_HandleCheckoutEvent(t *testing.T) {
	t.Parallel()

	const from = "vouchers@example.com"
	evt := domain.CheckoutEvent{
		Type:            domain.EventTypeCheckoutCompleted,
		SessionID:       "cs_test_123",
		PaymentIntentID: "pi_test_456",
	}
	gen := redemption.NewGeneratorWith(func() string {
		return "testcode12345"
	})

	testCases := []struct {
		name       string
		mock       func(ctrl *gomock.Controller) (order.Service, email.Service)
		wantRes    domain.PaymentResult
		assertFunc assert.ErrorAssertionFunc
	}{
		{
			name: "首次支付成功并发送邮件",
			mock: func(ctrl *gomock.Controller) (order.Service, email.Service) {
				orderSvc := ordermocks.NewMockService(ctrl)
				orderSvc.EXPECT().FindOrderBySessionID(gomock.Any(), "cs_test_123").
					Return(order.Order{
						ID:                22,
						BuyerEmail:        "maria@example.com",
						CheckoutSessionID: "cs_test_123",
						Status:            order.StatusPending,
						Voucher: order.Voucher{
							ID:          3,
							Name:        "Jantar para dois",
							Description: "Jantar romântico com vista para o mar",
							Price:       8990,
						},
					}, nil)
				orderSvc.EXPECT().MarkOrderPaid(gomock.Any(), int64(22), "VOUCHER-TESTCODE", "pi_test_456").
					Return("VOUCHER-TESTCODE", false, nil)
				emailSvc := emailmocks.NewMockService(ctrl)
				emailSvc.EXPECT().SendMail(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, mail email.Mail) error {
						assert.Equal(t, from, mail.From)
						assert.Equal(t, "maria@example.com", mail.To)
						assert.True(t, strings.Contains(string(mail.Body), "VOUCHER-TESTCODE"))
						assert.True(t, strings.Contains(string(mail.Body), "Jantar para dois"))
						assert.True(t, strings.Contains(string(mail.Body), "Jantar romântico com vista para o mar"))
						assert.True(t, strings.Contains(string(mail.Body), "€89,90"))
						return nil
					})
				return orderSvc, emailSvc
			},
			wantRes: domain.PaymentResult{
				OrderID:        22,
				RedemptionCode: "VOUCHER-TESTCODE",
				AlreadyPaid:    false,
			},
			assertFunc: assert.NoError,
		},
		{
			name: "重复投递返回已有兑换码且不重发邮件",
			mock: func(ctrl *gomock.Controller) (order.Service, email.Service) {
				orderSvc := ordermocks.NewMockService(ctrl)
				orderSvc.EXPECT().FindOrderBySessionID(gomock.Any(), "cs_test_123").
					Return(order.Order{
						ID:                22,
						BuyerEmail:        "maria@example.com",
						CheckoutSessionID: "cs_test_123",
						Status:            order.StatusPaid,
					}, nil)
				orderSvc.EXPECT().MarkOrderPaid(gomock.Any(), int64(22), "VOUCHER-TESTCODE", "pi_test_456").
					Return("VOUCHER-AAAA1111", true, nil)
				return orderSvc, emailmocks.NewMockService(ctrl)
			},
			wantRes: domain.PaymentResult{
				OrderID:        22,
				RedemptionCode: "VOUCHER-AAAA1111",
				AlreadyPaid:    true,
			},
			assertFunc: assert.NoError,
		},
		{
			name: "邮件发送失败不影响处理结果",
			mock: func(ctrl *gomock.Controller) (order.Service, email.Service) {
				orderSvc := ordermocks.NewMockService(ctrl)
				orderSvc.EXPECT().FindOrderBySessionID(gomock.Any(), "cs_test_123").
					Return(order.Order{
						ID:         22,
						BuyerEmail: "maria@example.com",
					}, nil)
				orderSvc.EXPECT().MarkOrderPaid(gomock.Any(), int64(22), "VOUCHER-TESTCODE", "pi_test_456").
					Return("VOUCHER-TESTCODE", false, nil)
				emailSvc := emailmocks.NewMockService(ctrl)
				emailSvc.EXPECT().SendMail(gomock.Any(), gomock.Any()).
					Return(errors.New("模拟邮件服务故障"))
				return orderSvc, emailSvc
			},
			wantRes: domain.PaymentResult{
				OrderID:        22,
				RedemptionCode: "VOUCHER-TESTCODE",
				AlreadyPaid:    false,
			},
			assertFunc: assert.NoError,
		},
		{
			name: "订单不存在",
			mock: func(ctrl *gomock.Controller) (order.Service, email.Service) {
				orderSvc := ordermocks.NewMockService(ctrl)
				orderSvc.EXPECT().FindOrderBySessionID(gomock.Any(), "cs_test_123").
					Return(order.Order{}, order.ErrOrderNotFound)
				return orderSvc, emailmocks.NewMockService(ctrl)
			},
			assertFunc: func(t assert.TestingT, err error, i ...any) bool {
				return assert.ErrorIs(t, err, order.ErrOrderNotFound)
			},
		},
		{
			name: "订单状态落库失败",
			mock: func(ctrl *gomock.Controller) (order.Service, email.Service) {
				orderSvc := ordermocks.NewMockService(ctrl)
				orderSvc.EXPECT().FindOrderBySessionID(gomock.Any(), "cs_test_123").
					Return(order.Order{ID: 22}, nil)
				orderSvc.EXPECT().MarkOrderPaid(gomock.Any(), int64(22), "VOUCHER-TESTCODE", "pi_test_456").
					Return("", false, errors.New("模拟数据库故障"))
				return orderSvc, emailmocks.NewMockService(ctrl)
			},
			assertFunc: assert.Error,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			orderSvc, emailSvc := tc.mock(ctrl)
			svc := NewService(orderSvc, gen, emailSvc, from)

			res, err := svc.HandleCheckoutEvent(context.Background(), evt)
			tc.assertFunc(t, err)
			if err != nil {
				return
			}
			require.Equal(t, tc.wantRes, res)
		})
	}
}
