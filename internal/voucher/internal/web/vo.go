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

// Voucher 对外字段名沿用葡语数据模型,前端直接消费
type Voucher struct {
	ID         int64  `json:"id"`
	Nome       string `json:"nome"`
	Descricao  string `json:"descricao"`
	Preco      int64  `json:"preco"`
	Disponivel bool   `json:"disponivel"`
}

// LookupResp 查询单个体验券响应
type LookupResp struct {
	Voucher Voucher `json:"voucher"`
}

// SaveVoucherReq 运营侧创建体验券
type SaveVoucherReq struct {
	Nome       string `json:"nome"`
	Descricao  string `json:"descricao"`
	Preco      int64  `json:"preco"`
	Disponivel bool   `json:"disponivel"`
}

type SaveVoucherResp struct {
	ID int64 `json:"id"`
}

// UpdateAvailabilityReq 上下架
type UpdateAvailabilityReq struct {
	ID         int64 `json:"id"`
	Disponivel bool  `json:"disponivel"`
}

// ListVouchersReq 分页查询可售体验券
type ListVouchersReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListVouchersResp struct {
	Total    int64     `json:"total,omitempty"`
	Vouchers []Voucher `json:"vouchers,omitempty"`
}
