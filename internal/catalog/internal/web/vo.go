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

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/voucherhub/internal/catalog/internal/domain"
	"github.com/ecodeclub/voucherhub/internal/pkg/i18n"
)

// Experience 对外的类目视图,文案已经按请求语言解析成单语
type Experience struct {
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Badge       string    `json:"badge"`
	Description string    `json:"description"`
	Partners    []Partner `json:"partners"`
}

// Partner JSON 字段名沿用前端既有的数据文件格式
type Partner struct {
	Slug                string   `json:"partner_slug"`
	Name                string   `json:"name"`
	Location            string   `json:"location"`
	PriceOriginal       string   `json:"price_original"`
	PriceDiscount       string   `json:"price_discount"`
	Savings             string   `json:"savings"`
	DiscountLabel       string   `json:"discount_label"`
	PromoCode           string   `json:"code"`
	OfficialURL         string   `json:"official_url"`
	Images              []string `json:"images"`
	Icon                string   `json:"icon"`
	DetailedDescription string   `json:"detailed_description,omitempty"`
}

func newExperience(exp domain.Experience, locale i18n.Locale) Experience {
	return Experience{
		Slug:        exp.Slug,
		Title:       exp.Title.Resolve(locale),
		Badge:       exp.Badge.Resolve(locale),
		Description: exp.Description.Resolve(locale),
		Partners: slice.Map(exp.Partners, func(idx int, src domain.Partner) Partner {
			return newPartner(src, locale)
		}),
	}
}

func newPartner(p domain.Partner, locale i18n.Locale) Partner {
	return Partner{
		Slug:                p.Slug,
		Name:                p.Name,
		Location:            p.Location,
		PriceOriginal:       p.PriceOriginal,
		PriceDiscount:       p.PriceDiscount,
		Savings:             p.Savings,
		DiscountLabel:       p.DiscountLabel,
		PromoCode:           p.PromoCode,
		OfficialURL:         p.OfficialURL,
		Images:              p.Images,
		Icon:                p.Icon,
		DetailedDescription: p.DetailedDescription.Resolve(locale),
	}
}

type SaveExperienceReq struct {
	Slug          string `json:"slug"`
	TitleEn       string `json:"title_en"`
	TitlePt       string `json:"title_pt"`
	BadgeEn       string `json:"badge_en"`
	BadgePt       string `json:"badge_pt"`
	DescriptionEn string `json:"description_en"`
	DescriptionPt string `json:"description_pt"`
}

type SavePartnerReq struct {
	ExperienceID          int64    `json:"experience_id"`
	Slug                  string   `json:"slug"`
	Name                  string   `json:"name"`
	Location              string   `json:"location"`
	PriceOriginal         string   `json:"price_original"`
	PriceDiscount         string   `json:"price_discount"`
	Savings               string   `json:"savings"`
	DiscountLabel         string   `json:"discount_label"`
	PromoCode             string   `json:"code"`
	OfficialURL           string   `json:"official_url"`
	Images                []string `json:"images"`
	Icon                  string   `json:"icon"`
	DetailedDescriptionEn string   `json:"detailed_description_en"`
	DetailedDescriptionPt string   `json:"detailed_description_pt"`
}

type SaveResp struct {
	ID int64 `json:"id"`
}
