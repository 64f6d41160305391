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
	"net/http"
	"strconv"

	"github.com/ecodeclub/voucherhub/internal/voucher/internal/repository"
	"github.com/ecodeclub/voucherhub/internal/voucher/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

type Handler struct {
	svc service.Service
	l   *elog.Component
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc: svc,
		l:   elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.GET("/vouchers", h.Lookup)
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

// Lookup 响应格式是跟前端约定死的,
// 不走统一的 ginx.Result,直接按约定返回
func (h *Handler) Lookup(ctx *gin.Context) {
	idStr := ctx.Query("id")
	if idStr == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID do voucher é obrigatório"})
		return
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		// 非法ID查不到任何记录,等同于不存在
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Voucher não encontrado"})
		return
	}
	v, err := h.svc.FindAvailableByID(ctx.Request.Context(), id)
	if errors.Is(err, repository.ErrVoucherNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Voucher não encontrado"})
		return
	}
	if err != nil {
		h.l.Error("查询体验券失败", elog.Int64("id", id), elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar voucher"})
		return
	}
	ctx.JSON(http.StatusOK, LookupResp{Voucher: Voucher{
		ID:         v.ID,
		Nome:       v.Name,
		Descricao:  v.Description,
		Preco:      v.Price,
		Disponivel: v.Available,
	}})
}
