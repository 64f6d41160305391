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
	"testing"

	"github.com/ecodeclub/voucherhub/internal/order/internal/domain"
	"github.com/ecodeclub/voucherhub/internal/order/internal/repository"
	repomocks "github.com/ecodeclub/voucherhub/internal/order/internal/repository/mocks"
	"github.com/ecodeclub/voucherhub/internal/voucher"
	vouchermocks "github.com/ecodeclub/voucherhub/internal/voucher/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestService_MarkOrderPaid(t *testing.T) {
	testCases := []struct {
		name            string
		mock            func(ctrl *gomock.Controller) (repository.OrderRepository, voucher.Service)
		orderID         int64
		code            string
		paymentIntentID string

		wantCode        string
		wantAlreadyPaid bool
		assertErr       assert.ErrorAssertionFunc
	}{
		{
			name: "首次推进成功",
			mock: func(ctrl *gomock.Controller) (repository.OrderRepository, voucher.Service) {
				repo := repomocks.NewMockOrderRepository(ctrl)
				repo.EXPECT().MarkOrderPaid(gomock.Any(), int64(7), "VOUCHER-AAAA1111", "pi_123").
					Return(true, nil)
				return repo, vouchermocks.NewMockService(ctrl)
			},
			orderID:         7,
			code:            "VOUCHER-AAAA1111",
			paymentIntentID: "pi_123",
			wantCode:        "VOUCHER-AAAA1111",
			wantAlreadyPaid: false,
			assertErr:       assert.NoError,
		},
		{
			name: "重复投递_返回已有兑换码",
			mock: func(ctrl *gomock.Controller) (repository.OrderRepository, voucher.Service) {
				repo := repomocks.NewMockOrderRepository(ctrl)
				repo.EXPECT().MarkOrderPaid(gomock.Any(), int64(7), "VOUCHER-BBBB2222", "pi_123").
					Return(false, nil)
				repo.EXPECT().FindOrderByID(gomock.Any(), int64(7)).
					Return(domain.Order{
						ID:             7,
						Status:         domain.StatusPaid,
						RedemptionCode: "VOUCHER-AAAA1111",
					}, nil)
				return repo, vouchermocks.NewMockService(ctrl)
			},
			orderID:         7,
			code:            "VOUCHER-BBBB2222",
			paymentIntentID: "pi_123",
			// 新生成的码被丢弃,返回第一次写进去的
			wantCode:        "VOUCHER-AAAA1111",
			wantAlreadyPaid: true,
			assertErr:       assert.NoError,
		},
		{
			name: "写入失败",
			mock: func(ctrl *gomock.Controller) (repository.OrderRepository, voucher.Service) {
				repo := repomocks.NewMockOrderRepository(ctrl)
				repo.EXPECT().MarkOrderPaid(gomock.Any(), int64(7), "VOUCHER-AAAA1111", "pi_123").
					Return(false, errors.New("db down"))
				return repo, vouchermocks.NewMockService(ctrl)
			},
			orderID:         7,
			code:            "VOUCHER-AAAA1111",
			paymentIntentID: "pi_123",
			assertErr:       assert.Error,
		},
		{
			name: "零行更新但订单不是已支付",
			mock: func(ctrl *gomock.Controller) (repository.OrderRepository, voucher.Service) {
				repo := repomocks.NewMockOrderRepository(ctrl)
				repo.EXPECT().MarkOrderPaid(gomock.Any(), int64(7), "VOUCHER-AAAA1111", "pi_123").
					Return(false, nil)
				repo.EXPECT().FindOrderByID(gomock.Any(), int64(7)).
					Return(domain.Order{ID: 7, Status: domain.StatusPending}, nil)
				return repo, vouchermocks.NewMockService(ctrl)
			},
			orderID:         7,
			code:            "VOUCHER-AAAA1111",
			paymentIntentID: "pi_123",
			assertErr:       assert.Error,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo, voucherSvc := tc.mock(ctrl)
			svc := NewService(repo, voucherSvc)
			code, alreadyPaid, err := svc.MarkOrderPaid(context.Background(),
				tc.orderID, tc.code, tc.paymentIntentID)
			tc.assertErr(t, err)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantCode, code)
			assert.Equal(t, tc.wantAlreadyPaid, alreadyPaid)
		})
	}
}

func TestService_FindOrderBySessionID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repomocks.NewMockOrderRepository(ctrl)
	repo.EXPECT().FindOrderBySessionID(gomock.Any(), "cs_123").
		Return(domain.Order{ID: 7, VoucherID: 3, BuyerEmail: "a@b.com"}, nil)
	voucherSvc := vouchermocks.NewMockService(ctrl)
	voucherSvc.EXPECT().FindByID(gomock.Any(), int64(3)).
		Return(voucher.Voucher{
			ID:          3,
			Name:        "Tour X",
			Description: "Passeio guiado",
			Price:       5000,
			// 已下架的券也要带快照返回
			Available: false,
		}, nil)

	svc := NewService(repo, voucherSvc)
	order, err := svc.FindOrderBySessionID(context.Background(), "cs_123")
	assert.NoError(t, err)
	assert.Equal(t, domain.Order{
		ID:         7,
		VoucherID:  3,
		BuyerEmail: "a@b.com",
		Voucher: domain.Voucher{
			ID:          3,
			Name:        "Tour X",
			Description: "Passeio guiado",
			Price:       5000,
		},
	}, order)
}

func TestService_FindOrderBySessionID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repomocks.NewMockOrderRepository(ctrl)
	repo.EXPECT().FindOrderBySessionID(gomock.Any(), "cs_miss").
		Return(domain.Order{}, repository.ErrOrderNotFound)

	svc := NewService(repo, vouchermocks.NewMockService(ctrl))
	_, err := svc.FindOrderBySessionID(context.Background(), "cs_miss")
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}
