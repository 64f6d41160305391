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

package web

import (
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/voucherhub/internal/order/internal/domain"
	"github.com/ecodeclub/voucherhub/internal/order/internal/repository"
	"github.com/ecodeclub/voucherhub/internal/order/internal/service"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	server.POST("/order/create", ginx.B[CreateOrderReq](h.Create))
	server.POST("/order/detail", ginx.B[DetailReq](h.Detail))
}

func (h *AdminHandler) Create(ctx *ginx.Context, req CreateOrderReq) (ginx.Result, error) {
	order, err := h.svc.CreateOrder(ctx.Request.Context(), domain.Order{
		VoucherID:         req.VoucherID,
		BuyerEmail:        req.EmailUsuario,
		CheckoutSessionID: req.CheckoutSessionID,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: CreateOrderResp{ID: order.ID},
	}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req DetailReq) (ginx.Result, error) {
	order, err := h.svc.FindOrderBySessionID(ctx.Request.Context(), req.CheckoutSessionID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return orderNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Order{
			ID:                  order.ID,
			VoucherID:           order.VoucherID,
			EmailUsuario:        order.BuyerEmail,
			Status:              order.Status.ToUint8(),
			CodigoVoucherGerado: order.RedemptionCode,
			PaymentIntentID:     order.PaymentIntentID,
			VoucherNome:         order.Voucher.Name,
		},
	}, nil
}
