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

package service

import (
	"context"
	"fmt"

	"github.com/ecodeclub/voucherhub/internal/email"
	"github.com/ecodeclub/voucherhub/internal/order"
	"github.com/ecodeclub/voucherhub/internal/payment/internal/domain"
	"github.com/ecodeclub/voucherhub/internal/pkg/redemption"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./service.go -package=paymentmocks -destination=../../mocks/payment.mock.go

// EventVerifier 校验 webhook 签名并把原始载荷归一化成支付事件
type EventVerifier interface {
	VerifyAndParse(payload []byte, sigHeader string) (domain.CheckoutEvent, error)
}

type Service interface {
	// HandleCheckoutEvent 处理 checkout.session.completed 事件:
	// 回查订单、生成兑换码、落库并给买家发确认邮件。
	// 重复投递会返回已有兑换码,不会重复生成也不会重发邮件
	HandleCheckoutEvent(ctx context.Context, evt domain.CheckoutEvent) (domain.PaymentResult, error)
}

type service struct {
	orderSvc  order.Service
	codeGen   *redemption.Generator
	emailSvc  email.Service
	emailFrom string
	l         *elog.Component
}

func NewService(orderSvc order.Service,
	codeGen *redemption.Generator,
	emailSvc email.Service,
	emailFrom string) Service {
	return &service{
		orderSvc:  orderSvc,
		codeGen:   codeGen,
		emailSvc:  emailSvc,
		emailFrom: emailFrom,
		l:         elog.DefaultLogger,
	}
}

func (s *service) HandleCheckoutEvent(ctx context.Context, evt domain.CheckoutEvent) (domain.PaymentResult, error) {
	ord, err := s.orderSvc.FindOrderBySessionID(ctx, evt.SessionID)
	if err != nil {
		return domain.PaymentResult{}, err
	}
	// 先生成再落库,并发或重放时以数据库里已有的兑换码为准
	code := s.codeGen.Generate()
	code, alreadyPaid, err := s.orderSvc.MarkOrderPaid(ctx, ord.ID, code, evt.PaymentIntentID)
	if err != nil {
		return domain.PaymentResult{}, err
	}
	if !alreadyPaid {
		s.sendConfirmation(ctx, ord, code)
	}
	return domain.PaymentResult{
		OrderID:        ord.ID,
		RedemptionCode: code,
		AlreadyPaid:    alreadyPaid,
	}, nil
}

// sendConfirmation 给买家发兑换码邮件。发送失败只记日志,
// 订单已经置为已支付,不能因为邮件把整个 webhook 打回去让 Stripe 重试
func (s *service) sendConfirmation(ctx context.Context, ord order.Order, code string) {
	body := fmt.Sprintf(`<h1>Obrigado pela sua compra!</h1>
<p>Seu pedido <strong>%s</strong> foi confirmado.</p>
<p><strong>Descrição:</strong> %s</p>
<p><strong>Valor pago:</strong> %s</p>
<p>Seu código do voucher é:</p>
<h2>%s</h2>
<p>Apresente este código ao parceiro para resgatar sua experiência.</p>`,
		ord.Voucher.Name, ord.Voucher.Description, formatPrice(ord.Voucher.Price), code)
	err := s.emailSvc.SendMail(ctx, email.Mail{
		From:    s.emailFrom,
		To:      ord.BuyerEmail,
		Subject: "Seu voucher chegou! 🎉",
		Body:    []byte(body),
	})
	if err != nil {
		s.l.Error("发送兑换码邮件失败",
			elog.Int64("pedidoID", ord.ID),
			elog.FieldErr(err))
	}
}

// formatPrice 把以分为单位的价格渲染成欧元金额,小数点用葡语习惯的逗号
func formatPrice(cents int64) string {
	return fmt.Sprintf("€%d,%02d", cents/100, cents%100)
}
