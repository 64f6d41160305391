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

package stripe

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ecodeclub/voucherhub/internal/payment/internal/domain"
	"github.com/gotomicro/ego/core/elog"
	stripe "github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/webhook"
)

var (
	ErrInvalidSignature = errors.New("webhook签名校验失败")
	ErrMalformedPayload = errors.New("webhook载荷非法")
)

// Verifier 校验 Stripe webhook 签名并把事件归一化。
// secret 为空时降级为不验签直接解析,只打告警,
// 这是联调用的不安全模式,生产必须配置签名密钥
type Verifier struct {
	secret string
	l      *elog.Component
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{
		secret: secret,
		l:      elog.DefaultLogger,
	}
}

func (v *Verifier) VerifyAndParse(payload []byte, sigHeader string) (domain.CheckoutEvent, error) {
	var event stripe.Event
	if v.secret != "" {
		var err error
		event, err = webhook.ConstructEvent(payload, sigHeader, v.secret)
		if err != nil {
			return domain.CheckoutEvent{}, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
		}
	} else {
		v.l.Warn("未配置Stripe webhook签名密钥,跳过验签")
		if err := json.Unmarshal(payload, &event); err != nil {
			return domain.CheckoutEvent{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
		}
	}

	res := domain.CheckoutEvent{Type: event.Type}
	if !res.IsCheckoutCompleted() {
		return res, nil
	}
	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return domain.CheckoutEvent{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	res.SessionID = sess.ID
	if sess.PaymentIntent != nil {
		res.PaymentIntentID = sess.PaymentIntent.ID
	}
	return res, nil
}
