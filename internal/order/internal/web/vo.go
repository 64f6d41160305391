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

// CreateOrderReq 运营侧/结账流程落一条待支付订单
type CreateOrderReq struct {
	VoucherID         int64  `json:"voucher_id"`
	EmailUsuario      string `json:"email_usuario"`
	CheckoutSessionID string `json:"stripe_checkout_session_id"`
}

type CreateOrderResp struct {
	ID int64 `json:"id"`
}

// DetailReq 按支付会话ID查订单
type DetailReq struct {
	CheckoutSessionID string `json:"stripe_checkout_session_id"`
}

type Order struct {
	ID                  int64  `json:"id"`
	VoucherID           int64  `json:"voucher_id"`
	EmailUsuario        string `json:"email_usuario"`
	Status              uint8  `json:"status"`
	CodigoVoucherGerado string `json:"codigo_voucher_gerado,omitempty"`
	PaymentIntentID     string `json:"stripe_payment_intent_id,omitempty"`
	VoucherNome         string `json:"voucher_nome"`
}
