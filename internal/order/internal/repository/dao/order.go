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

package dao

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrDataNotFound = gorm.ErrRecordNotFound
	// ErrDuplicatedOrder 同一个 Checkout 会话只允许一条订单
	ErrDuplicatedOrder = errors.New("订单记录重复")
)

type OrderDAO interface {
	Create(ctx context.Context, o Order) (int64, error)
	FindByID(ctx context.Context, id int64) (Order, error)
	FindByCheckoutSessionID(ctx context.Context, sessionID string) (Order, error)
	// MarkPaid 只推进 Pending 状态的订单,返回受影响行数,
	// 0 行说明订单已经不在 Pending 状态
	MarkPaid(ctx context.Context, id int64, code, paymentIntentID string) (int64, error)
}

type OrderGORMDAO struct {
	db *egorm.Component
}

func NewOrderGORMDAO(db *egorm.Component) OrderDAO {
	return &OrderGORMDAO{db: db}
}

func (d *OrderGORMDAO) Create(ctx context.Context, o Order) (int64, error) {
	now := time.Now().UnixMilli()
	o.Ctime, o.Utime = now, now
	err := d.db.WithContext(ctx).Create(&o).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrDuplicatedOrder
		}
	}
	return o.Id, err
}

func (d *OrderGORMDAO) FindByID(ctx context.Context, id int64) (Order, error) {
	var res Order
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *OrderGORMDAO) FindByCheckoutSessionID(ctx context.Context, sessionID string) (Order, error) {
	var res Order
	err := d.db.WithContext(ctx).
		Where("stripe_checkout_session_id = ?", sessionID).
		First(&res).Error
	return res, err
}

func (d *OrderGORMDAO) MarkPaid(ctx context.Context, id int64, code, paymentIntentID string) (int64, error) {
	res := d.db.WithContext(ctx).Model(&Order{}).
		Where("id = ? AND status = ?", id, StatusPending).
		Updates(map[string]any{
			"status":                   StatusPaid,
			"codigo_voucher_gerado":    code,
			"stripe_payment_intent_id": paymentIntentID,
			"utime":                    time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}

const (
	StatusPending uint8 = 1
	StatusPaid    uint8 = 2
)

// Order 列名保留葡语订单模型
type Order struct {
	Id                      int64          `gorm:"primaryKey;autoIncrement;comment:订单自增ID"`
	VoucherId               int64          `gorm:"column:voucher_id;not null;index:idx_voucher_id;comment:体验券自增ID"`
	EmailUsuario            string         `gorm:"type:varchar(255);not null;comment:购买人邮箱"`
	StripeCheckoutSessionId string         `gorm:"type:varchar(255);not null;uniqueIndex:uniq_stripe_checkout_session_id;comment:Stripe Checkout会话ID"`
	StripePaymentIntentId   sql.NullString `gorm:"type:varchar(255);comment:Stripe支付意向ID,支付成功后回填"`
	CodigoVoucherGerado     sql.NullString `gorm:"type:varchar(255);comment:支付成功后生成的兑换码"`
	Status                  uint8          `gorm:"type:tinyint unsigned;not null;default:1;comment:订单状态 1=待支付 2=已支付"`
	Ctime                   int64
	Utime                   int64
}

func (Order) TableName() string {
	return "pedidos"
}
