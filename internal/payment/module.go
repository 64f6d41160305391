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

package payment

import (
	"github.com/ecodeclub/voucherhub/internal/email"
	"github.com/ecodeclub/voucherhub/internal/order"
	"github.com/ecodeclub/voucherhub/internal/payment/internal/domain"
	"github.com/ecodeclub/voucherhub/internal/payment/internal/service"
	"github.com/ecodeclub/voucherhub/internal/payment/internal/service/stripe"
	"github.com/ecodeclub/voucherhub/internal/payment/internal/web"
	"github.com/ecodeclub/voucherhub/internal/pkg/redemption"
)

type Module struct {
	Svc Service
	Hdl *Handler
}

// Config webhook 侧的少量配置,由 ioc 从配置文件里读出来
type Config struct {
	// WebhookSecret Stripe 签名密钥,为空时不验签,只能用于本地联调
	WebhookSecret string
	// EmailFrom 兑换码确认邮件的发件人
	EmailFrom string
}

type (
	Handler       = web.Handler
	Service       = service.Service
	EventVerifier = service.EventVerifier
	CheckoutEvent = domain.CheckoutEvent
	PaymentResult = domain.PaymentResult
)

func initVerifier(cfg Config) service.EventVerifier {
	return stripe.NewVerifier(cfg.WebhookSecret)
}

func initService(cfg Config,
	orderModule *order.Module,
	emailSvc email.Service) service.Service {
	return service.NewService(orderModule.Svc,
		redemption.NewGenerator(),
		emailSvc,
		cfg.EmailFrom)
}
