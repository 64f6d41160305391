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

package domain

// EventTypeCheckoutCompleted 只有这种事件会触发业务处理,
// 其余事件一律确认收到后丢弃
const EventTypeCheckoutCompleted = "checkout.session.completed"

// CheckoutEvent 归一化后的支付渠道回调事件
type CheckoutEvent struct {
	Type string
	// SessionID 仅 checkout.session.completed 事件有值
	SessionID string
	// PaymentIntentID 渠道侧支付单ID,可能为空
	PaymentIntentID string
}

func (e CheckoutEvent) IsCheckoutCompleted() bool {
	return e.Type == EventTypeCheckoutCompleted
}

// PaymentResult 支付完成处理结果
type PaymentResult struct {
	OrderID        int64
	RedemptionCode string
	// AlreadyPaid 重复投递的事件,没有发生新的写入和通知
	AlreadyPaid bool
}
