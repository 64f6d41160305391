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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/iotest"

	"github.com/ecodeclub/voucherhub/internal/order"
	"github.com/ecodeclub/voucherhub/internal/payment/internal/domain"
	"github.com/ecodeclub/voucherhub/internal/payment/internal/service"
	stripevf "github.com/ecodeclub/voucherhub/internal/payment/internal/service/stripe"
	paymentmocks "github.com/ecodeclub/voucherhub/internal/payment/mocks"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_Webhook(t *testing.T) {
	const payload = `{"type":"checkout.session.completed"}`
	completed := domain.CheckoutEvent{
		Type:            domain.EventTypeCheckoutCompleted,
		SessionID:       "cs_test_123",
		PaymentIntentID: "pi_test_456",
	}

	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) (service.EventVerifier, service.Service)
		wantCode int
		wantBody map[string]any
	}{
		{
			name: "支付成功确认",
			mock: func(ctrl *gomock.Controller) (service.EventVerifier, service.Service) {
				verifier := paymentmocks.NewMockEventVerifier(ctrl)
				verifier.EXPECT().VerifyAndParse([]byte(payload), "t=1,v1=sig").
					Return(completed, nil)
				svc := paymentmocks.NewMockService(ctrl)
				svc.EXPECT().HandleCheckoutEvent(gomock.Any(), completed).
					Return(domain.PaymentResult{
						OrderID:        22,
						RedemptionCode: "VOUCHER-AAAA1111",
					}, nil)
				return verifier, svc
			},
			wantCode: http.StatusOK,
			wantBody: map[string]any{
				"received":  true,
				"pedido_id": float64(22),
				"codigo":    "VOUCHER-AAAA1111",
			},
		},
		{
			name: "签名校验失败",
			mock: func(ctrl *gomock.Controller) (service.EventVerifier, service.Service) {
				verifier := paymentmocks.NewMockEventVerifier(ctrl)
				verifier.EXPECT().VerifyAndParse([]byte(payload), "t=1,v1=sig").
					Return(domain.CheckoutEvent{},
						fmt.Errorf("%w: 签名不匹配", stripevf.ErrInvalidSignature))
				return verifier, paymentmocks.NewMockService(ctrl)
			},
			wantCode: http.StatusBadRequest,
			wantBody: map[string]any{"error": "Webhook signature verification failed"},
		},
		{
			name: "非结账完成事件直接确认",
			mock: func(ctrl *gomock.Controller) (service.EventVerifier, service.Service) {
				verifier := paymentmocks.NewMockEventVerifier(ctrl)
				verifier.EXPECT().VerifyAndParse([]byte(payload), "t=1,v1=sig").
					Return(domain.CheckoutEvent{Type: "payment_intent.created"}, nil)
				return verifier, paymentmocks.NewMockService(ctrl)
			},
			wantCode: http.StatusOK,
			wantBody: map[string]any{"received": true},
		},
		{
			name: "找不到对应订单",
			mock: func(ctrl *gomock.Controller) (service.EventVerifier, service.Service) {
				verifier := paymentmocks.NewMockEventVerifier(ctrl)
				verifier.EXPECT().VerifyAndParse([]byte(payload), "t=1,v1=sig").
					Return(completed, nil)
				svc := paymentmocks.NewMockService(ctrl)
				svc.EXPECT().HandleCheckoutEvent(gomock.Any(), completed).
					Return(domain.PaymentResult{}, order.ErrOrderNotFound)
				return verifier, svc
			},
			wantCode: http.StatusNotFound,
			wantBody: map[string]any{"error": "Pedido não encontrado"},
		},
		{
			name: "处理事件内部失败",
			mock: func(ctrl *gomock.Controller) (service.EventVerifier, service.Service) {
				verifier := paymentmocks.NewMockEventVerifier(ctrl)
				verifier.EXPECT().VerifyAndParse([]byte(payload), "t=1,v1=sig").
					Return(completed, nil)
				svc := paymentmocks.NewMockService(ctrl)
				svc.EXPECT().HandleCheckoutEvent(gomock.Any(), completed).
					Return(domain.PaymentResult{}, errors.New("模拟数据库故障"))
				return verifier, svc
			},
			wantCode: http.StatusInternalServerError,
			wantBody: map[string]any{"error": "Internal server error"},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			server := gin.New()
			verifier, svc := tc.mock(ctrl)
			NewHandler(verifier, svc).PublicRoutes(server)

			req, err := http.NewRequest(http.MethodPost,
				"/webhook/stripe", bytes.NewBufferString(payload))
			require.NoError(t, err)
			req.Header.Set("stripe-signature", "t=1,v1=sig")
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			assert.Equal(t, tc.wantCode, recorder.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, tc.wantBody, body)
		})
	}
}

// 请求体都读不出来就谈不上验签,提示不应该误导成签名错误
func TestHandler_Webhook_ReadBodyFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := gin.New()
	NewHandler(paymentmocks.NewMockEventVerifier(ctrl),
		paymentmocks.NewMockService(ctrl)).PublicRoutes(server)

	req, err := http.NewRequest(http.MethodPost,
		"/webhook/stripe", iotest.ErrReader(errors.New("模拟连接中断")))
	require.NoError(t, err)
	req.Header.Set("stripe-signature", "t=1,v1=sig")
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, map[string]any{"error": "Invalid request body"}, body)
}
