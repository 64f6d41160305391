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

//go:build e2e

package integration

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/ecodeclub/voucherhub/internal/email"
	emailmocks "github.com/ecodeclub/voucherhub/internal/email/mocks"
	"github.com/ecodeclub/voucherhub/internal/order"
	"github.com/ecodeclub/voucherhub/internal/payment"
	testioc "github.com/ecodeclub/voucherhub/internal/test/ioc"
	"github.com/ecodeclub/voucherhub/internal/voucher"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const webhookSecret = "whsec_e2e_secret"

type WebhookTestSuite struct {
	suite.Suite
	db         *egorm.Component
	server     *egin.Component
	voucherSvc voucher.Service
	orderSvc   order.Service
	sentMails  []email.Mail
}

func (s *WebhookTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	voucherModule := voucher.InitModule(s.db)
	orderModule := order.InitModule(s.db, voucherModule)

	ctrl := gomock.NewController(s.T())
	emailSvc := emailmocks.NewMockService(ctrl)
	emailSvc.EXPECT().SendMail(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, mail email.Mail) error {
			s.sentMails = append(s.sentMails, mail)
			return nil
		}).AnyTimes()

	paymentModule := payment.InitModule(payment.Config{
		WebhookSecret: webhookSecret,
		EmailFrom:     "VoucherHub <vouchers@example.com>",
	}, orderModule, emailSvc)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	paymentModule.Hdl.PublicRoutes(server.Engine)

	s.server = server
	s.voucherSvc = voucherModule.Svc
	s.orderSvc = orderModule.Svc
}

func (s *WebhookTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `pedidos`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `vouchers`").Error
	require.NoError(s.T(), err)
	s.sentMails = nil
}

func (s *WebhookTestSuite) TestCheckoutCompleted() {
	t := s.T()
	ord := s.createPendingOrder(t, "cs_e2e_001")

	payload := checkoutPayload("cs_e2e_001", "pi_e2e_001")
	recorder := s.postWebhook(t, payload, signPayload(payload, webhookSecret))
	require.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, true, body["received"])
	assert.Equal(t, float64(ord.ID), body["pedido_id"])
	code := body["codigo"].(string)
	assert.True(t, strings.HasPrefix(code, "VOUCHER-"))

	saved, err := s.orderSvc.FindOrderBySessionID(context.Background(), "cs_e2e_001")
	require.NoError(t, err)
	assert.Equal(t, order.StatusPaid, saved.Status)
	assert.Equal(t, code, saved.RedemptionCode)
	assert.Equal(t, "pi_e2e_001", saved.PaymentIntentID)

	require.Len(t, s.sentMails, 1)
	assert.Equal(t, ord.BuyerEmail, s.sentMails[0].To)
	assert.Contains(t, string(s.sentMails[0].Body), code)
}

// 同一个会话重复投递,兑换码不变,邮件只发一次
func (s *WebhookTestSuite) TestCheckoutCompletedReplay() {
	t := s.T()
	s.createPendingOrder(t, "cs_e2e_002")

	payload := checkoutPayload("cs_e2e_002", "pi_e2e_002")
	first := s.postWebhook(t, payload, signPayload(payload, webhookSecret))
	require.Equal(t, http.StatusOK, first.Code)
	var firstBody map[string]any
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &firstBody))

	second := s.postWebhook(t, payload, signPayload(payload, webhookSecret))
	require.Equal(t, http.StatusOK, second.Code)
	var secondBody map[string]any
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &secondBody))

	assert.Equal(t, firstBody["codigo"], secondBody["codigo"])
	assert.Len(t, s.sentMails, 1)
}

func (s *WebhookTestSuite) TestUnknownSession() {
	t := s.T()
	payload := checkoutPayload("cs_e2e_unknown", "pi_e2e_003")
	recorder := s.postWebhook(t, payload, signPayload(payload, webhookSecret))
	require.Equal(t, http.StatusNotFound, recorder.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Pedido não encontrado", body["error"])
}

func (s *WebhookTestSuite) TestBadSignature() {
	t := s.T()
	payload := checkoutPayload("cs_e2e_004", "pi_e2e_004")
	recorder := s.postWebhook(t, payload, signPayload(payload, "whsec_wrong"))
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Webhook signature verification failed", body["error"])
	assert.Empty(t, s.sentMails)
}

func (s *WebhookTestSuite) createPendingOrder(t *testing.T, sessionID string) order.Order {
	voucherID, err := s.voucherSvc.Save(context.Background(), voucher.Voucher{
		Name:        "Jantar para dois",
		Description: "Jantar romântico",
		Price:       4900,
		Available:   true,
	})
	require.NoError(t, err)
	ord, err := s.orderSvc.CreateOrder(context.Background(), order.Order{
		VoucherID:         voucherID,
		BuyerEmail:        "maria@example.com",
		CheckoutSessionID: sessionID,
	})
	require.NoError(t, err)
	return ord
}

func (s *WebhookTestSuite) postWebhook(t *testing.T, payload []byte, sig string) *httptest.ResponseRecorder {
	req, err := http.NewRequest(http.MethodPost,
		"/webhook/stripe", bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	req.Header.Set("stripe-signature", sig)
	recorder := httptest.NewRecorder()
	s.server.ServeHTTP(recorder, req)
	return recorder
}

func checkoutPayload(sessionID, paymentIntentID string) []byte {
	return []byte(fmt.Sprintf(`{
  "id": "evt_e2e_1",
  "type": "checkout.session.completed",
  "data": {
    "object": {
      "id": %q,
      "object": "checkout.session",
      "payment_intent": %q
    }
  }
}`, sessionID, paymentIntentID))
}

func signPayload(payload []byte, secret string) string {
	ts := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(ts, 10)))
	mac.Write([]byte("."))
	mac.Write(payload)
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func TestWebhookSuite(t *testing.T) {
	suite.Run(t, new(WebhookTestSuite))
}
