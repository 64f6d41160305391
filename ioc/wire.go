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

//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/voucherhub/internal/catalog"
	"github.com/ecodeclub/voucherhub/internal/order"
	"github.com/ecodeclub/voucherhub/internal/payment"
	"github.com/ecodeclub/voucherhub/internal/voucher"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitConfig, InitDB, InitRedis, InitCache)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitEmailService,
		InitPaymentConfig,
		voucher.InitModule,
		wire.FieldsOf(new(*voucher.Module), "Hdl", "AdminHdl"),
		order.InitModule,
		wire.FieldsOf(new(*order.Module), "AdminHdl"),
		payment.InitModule,
		wire.FieldsOf(new(*payment.Module), "Hdl"),
		catalog.InitModule,
		wire.FieldsOf(new(*catalog.Module), "Hdl", "AdminHdl"),
		initGinxServer,
		InitAdminServer)
	return new(App), nil
}
