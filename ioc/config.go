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
	"github.com/ecodeclub/voucherhub/config"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

func InitConfig() config.VoucherhubConfig {
	cfg := config.VoucherhubConfig{
		DB: config.DBConfig{
			DSN: econf.GetString("mysql.dsn"),
		},
		Stripe: config.StripeConfig{
			WebhookSecret: econf.GetString("stripe.webhookSecret"),
		},
		Resend: config.ResendConfig{
			APIKey: econf.GetString("resend.apiKey"),
		},
		Email: config.EmailConfig{
			From: econf.GetString("email.from"),
		},
	}
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	if cfg.Stripe.WebhookSecret == "" {
		elog.DefaultLogger.Warn("未配置 stripe.webhookSecret,webhook 将不验签,切勿用于生产")
	}
	return cfg
}
