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

import (
	"github.com/ecodeclub/voucherhub/internal/pkg/i18n"
)

// Experience 体验类目,比如晚餐、水疗、观光。
// 标题这类面向用户的文案按语言拆开存,价格文案跟着合作方走
type Experience struct {
	ID          int64
	Slug        string
	Title       i18n.Text
	Badge       i18n.Text
	Description i18n.Text
	Partners    []Partner
	Ctime       int64
	Utime       int64
}

// Partner 类目下的具体合作方报价。
// 价格字段保留原始展示文案,不做金额运算
type Partner struct {
	ID           int64
	ExperienceID int64
	Slug         string
	Name         string
	Location     string
	// PriceOriginal 划线价文案
	PriceOriginal string
	// PriceDiscount 折后价文案
	PriceDiscount string
	Savings       string
	DiscountLabel string
	// PromoCode 线下核销用的推广码,跟订单兑换码是两回事
	PromoCode           string
	OfficialURL         string
	Images              []string
	Icon                string
	DetailedDescription i18n.Text
	Ctime               int64
	Utime               int64
}
