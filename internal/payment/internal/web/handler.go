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
	"io"
	"net/http"

	"github.com/ecodeclub/voucherhub/internal/order"
	"github.com/ecodeclub/voucherhub/internal/payment/internal/service"
	stripevf "github.com/ecodeclub/voucherhub/internal/payment/internal/service/stripe"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// Handler Stripe webhook 回调入口。
// 响应格式是跟 Stripe 侧约定死的,不走统一的 Result 包装
type Handler struct {
	verifier service.EventVerifier
	svc      service.Service
	l        *elog.Component
}

func NewHandler(verifier service.EventVerifier, svc service.Service) *Handler {
	return &Handler{
		verifier: verifier,
		svc:      svc,
		l:        elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/webhook/stripe", h.Webhook)
}

func (h *Handler) Webhook(ctx *gin.Context) {
	payload, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		h.l.Warn("读取webhook请求体失败", elog.FieldErr(err))
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}
	evt, err := h.verifier.VerifyAndParse(payload, ctx.GetHeader("stripe-signature"))
	if err != nil {
		if errors.Is(err, stripevf.ErrInvalidSignature) ||
			errors.Is(err, stripevf.ErrMalformedPayload) {
			h.l.Warn("webhook校验失败", elog.FieldErr(err))
			ctx.JSON(http.StatusBadRequest, gin.H{
				"error": "Webhook signature verification failed",
			})
			return
		}
		h.l.Error("webhook解析失败", elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	// 其它事件直接确认,避免 Stripe 反复重试
	if !evt.IsCheckoutCompleted() {
		ctx.JSON(http.StatusOK, gin.H{"received": true})
		return
	}
	res, err := h.svc.HandleCheckoutEvent(ctx.Request.Context(), evt)
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			h.l.Warn("回调找不到对应订单",
				elog.String("sessionID", evt.SessionID))
			ctx.JSON(http.StatusNotFound, gin.H{
				"error": "Pedido não encontrado",
			})
			return
		}
		h.l.Error("处理支付事件失败",
			elog.String("sessionID", evt.SessionID),
			elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"received":  true,
		"pedido_id": res.OrderID,
		"codigo":    res.RedemptionCode,
	})
}
