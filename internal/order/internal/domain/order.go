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

type OrderStatus uint8

func (s OrderStatus) ToUint8() uint8 {
	return uint8(s)
}

// 订单只有一种状态流转: 待支付 -> 已支付
const (
	StatusPending OrderStatus = 1
	StatusPaid    OrderStatus = 2
)

type Order struct {
	ID         int64
	VoucherID  int64
	BuyerEmail string
	// CheckoutSessionID 发起支付时由支付渠道生成,唯一
	CheckoutSessionID string
	// PaymentIntentID 支付成功后从回调事件里回填
	PaymentIntentID string
	// RedemptionCode 支付成功后生成的兑换码
	RedemptionCode string
	Status         OrderStatus
	// Voucher 读取订单时回查的体验券快照
	Voucher Voucher
	Ctime   int64
	Utime   int64
}

// Voucher 订单视角的体验券快照,不依赖 voucher 模块的领域对象
type Voucher struct {
	ID          int64
	Name        string
	Description string
	Price       int64
}
