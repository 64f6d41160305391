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

package config

import (
	"errors"
)

type VoucherhubConfig struct {
	DB     DBConfig
	Stripe StripeConfig
	Resend ResendConfig
	Email  EmailConfig
}

type DBConfig struct {
	DSN string
}

type StripeConfig struct {
	// WebhookSecret 为空时 webhook 不验签,只适合本地联调
	WebhookSecret string
}

type ResendConfig struct {
	APIKey string
}

type EmailConfig struct {
	// From 兑换码确认邮件的发件人
	From string
}

func (c VoucherhubConfig) Validate() error {
	if c.DB.DSN == "" {
		return errors.New("缺少 mysql.dsn 配置")
	}
	if c.Resend.APIKey == "" {
		return errors.New("缺少 resend.apiKey 配置")
	}
	if c.Email.From == "" {
		return errors.New("缺少 email.from 配置")
	}
	return nil
}
