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

package ioc

import (
	"net/http"

	"github.com/ecodeclub/voucherhub/internal/catalog"
	"github.com/ecodeclub/voucherhub/internal/payment"
	"github.com/ecodeclub/voucherhub/internal/voucher"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

// initGinxServer 前台服务。查券和目录是给前端用的,
// webhook 是给 Stripe 回调用的,全部不需要登录态
func initGinxServer(voucherHdl *voucher.Handler,
	paymentHdl *payment.Handler,
	catalogHdl *catalog.Handler,
) *egin.Component {
	res := egin.Load("web").Build()
	// 前端托管在别的域名上,放开跨域;
	// stripe-signature 要在允许列表里,否则预检会拦掉回调
	res.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{
			"Authorization", "X-Client-Info", "Apikey",
			"Content-Type", "Stripe-Signature",
		},
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	voucherHdl.PublicRoutes(res.Engine)
	paymentHdl.PublicRoutes(res.Engine)
	catalogHdl.PublicRoutes(res.Engine)
	return res
}
