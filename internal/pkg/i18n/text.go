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

package i18n

type Locale string

const (
	LocaleEN Locale = "en"
	LocalePT Locale = "pt"

	// DefaultLocale 兜底语言
	DefaultLocale = LocaleEN
)

// ParseLocale 解析语言参数,不认识的一律回退到默认语言
func ParseLocale(lang string) Locale {
	switch Locale(lang) {
	case LocaleEN:
		return LocaleEN
	case LocalePT:
		return LocalePT
	default:
		return DefaultLocale
	}
}

// Text 多语言文案。按请求语言取值,
// 取不到回退到默认语言,再取不到返回空串
type Text struct {
	EN string `json:"en"`
	PT string `json:"pt"`
}

func (t Text) Resolve(locale Locale) string {
	if val := t.get(locale); val != "" {
		return val
	}
	return t.get(DefaultLocale)
}

func (t Text) get(locale Locale) string {
	switch locale {
	case LocalePT:
		return t.PT
	case LocaleEN:
		return t.EN
	default:
		return ""
	}
}
