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
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/voucherhub/internal/voucher/internal/domain"
	"github.com/ecodeclub/voucherhub/internal/voucher/internal/repository"
	"github.com/ecodeclub/voucherhub/internal/voucher/internal/service"
	vouchermocks "github.com/ecodeclub/voucherhub/internal/voucher/mocks"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_Lookup(t *testing.T) {
	testCases := []struct {
		name     string
		target   string
		mock     func(ctrl *gomock.Controller) service.Service
		wantCode int
		wantBody map[string]any
	}{
		{
			name:   "查找成功",
			target: "/vouchers?id=7",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := vouchermocks.NewMockService(ctrl)
				svc.EXPECT().FindAvailableByID(gomock.Any(), int64(7)).
					Return(domain.Voucher{
						ID:          7,
						Name:        "Tour X",
						Description: "Passeio guiado",
						Price:       5000,
						Available:   true,
					}, nil)
				return svc
			},
			wantCode: http.StatusOK,
			wantBody: map[string]any{
				"voucher": map[string]any{
					"id":         float64(7),
					"nome":       "Tour X",
					"descricao":  "Passeio guiado",
					"preco":      float64(5000),
					"disponivel": true,
				},
			},
		},
		{
			name:   "缺少ID参数_不访问存储",
			target: "/vouchers",
			mock: func(ctrl *gomock.Controller) service.Service {
				return vouchermocks.NewMockService(ctrl)
			},
			wantCode: http.StatusBadRequest,
			wantBody: map[string]any{"error": "ID do voucher é obrigatório"},
		},
		{
			name:   "不存在或已下架",
			target: "/vouchers?id=999",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := vouchermocks.NewMockService(ctrl)
				svc.EXPECT().FindAvailableByID(gomock.Any(), int64(999)).
					Return(domain.Voucher{}, repository.ErrVoucherNotFound)
				return svc
			},
			wantCode: http.StatusNotFound,
			wantBody: map[string]any{"error": "Voucher não encontrado"},
		},
		{
			name:   "非法ID等同于不存在",
			target: "/vouchers?id=abc",
			mock: func(ctrl *gomock.Controller) service.Service {
				return vouchermocks.NewMockService(ctrl)
			},
			wantCode: http.StatusNotFound,
			wantBody: map[string]any{"error": "Voucher não encontrado"},
		},
		{
			name:   "存储层查询失败",
			target: "/vouchers?id=7",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := vouchermocks.NewMockService(ctrl)
				svc.EXPECT().FindAvailableByID(gomock.Any(), int64(7)).
					Return(domain.Voucher{}, errors.New("db down"))
				return svc
			},
			wantCode: http.StatusInternalServerError,
			wantBody: map[string]any{"error": "Erro ao buscar voucher"},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			server := gin.New()
			NewHandler(tc.mock(ctrl)).PublicRoutes(server)

			req, err := http.NewRequest(http.MethodGet, tc.target, nil)
			require.NoError(t, err)
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			assert.Equal(t, tc.wantCode, recorder.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, tc.wantBody, body)
		})
	}
}
