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

package resend

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/voucherhub/internal/email"
	"github.com/resend/resend-go/v2"
)

// 出站调用不重试,超时兜底。
// 上游投递失败由支付渠道重投webhook兜底
const sendTimeout = 10 * time.Second

// ResendAPI Resend 邮件推送API客户端
type ResendAPI struct {
	client *resend.Client
}

func NewResendAPI(apiKey string) *ResendAPI {
	return &ResendAPI{client: resend.NewClient(apiKey)}
}

// SendMail 实现 email.Service 接口
func (r *ResendAPI) SendMail(ctx context.Context, mail email.Mail) error {
	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()
	_, err := r.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    mail.From,
		To:      []string{mail.To},
		Subject: mail.Subject,
		Html:    string(mail.Body),
	})
	if err != nil {
		return fmt.Errorf("调用Resend发送邮件失败: %w", err)
	}
	return nil
}
