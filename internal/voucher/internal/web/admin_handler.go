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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/voucherhub/internal/voucher/internal/domain"
	"github.com/ecodeclub/voucherhub/internal/voucher/internal/service"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	server.POST("/voucher/save", ginx.B[SaveVoucherReq](h.Save))
	server.POST("/voucher/list", ginx.B[ListVouchersReq](h.List))
	server.POST("/voucher/availability", ginx.B[UpdateAvailabilityReq](h.UpdateAvailability))
}

func (h *AdminHandler) Save(ctx *ginx.Context, req SaveVoucherReq) (ginx.Result, error) {
	id, err := h.svc.Save(ctx.Request.Context(), domain.Voucher{
		Name:        req.Nome,
		Description: req.Descricao,
		Price:       req.Preco,
		Available:   req.Disponivel,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: SaveVoucherResp{ID: id},
	}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListVouchersReq) (ginx.Result, error) {
	vs, total, err := h.svc.List(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListVouchersResp{
			Total: total,
			Vouchers: slice.Map(vs, func(idx int, src domain.Voucher) Voucher {
				return Voucher{
					ID:         src.ID,
					Nome:       src.Name,
					Descricao:  src.Description,
					Preco:      src.Price,
					Disponivel: src.Available,
				}
			}),
		},
	}, nil
}

// UpdateAvailability 库存售罄之后运营手动下架
func (h *AdminHandler) UpdateAvailability(ctx *ginx.Context, req UpdateAvailabilityReq) (ginx.Result, error) {
	err := h.svc.UpdateAvailability(ctx.Request.Context(), req.ID, req.Disponivel)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}
