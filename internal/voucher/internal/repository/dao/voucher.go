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
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

// ErrDataNotFound 通用的数据没找到
var ErrDataNotFound = gorm.ErrRecordNotFound

type VoucherDAO interface {
	FindByID(ctx context.Context, id int64) (Voucher, error)
	FindAvailableByID(ctx context.Context, id int64) (Voucher, error)
	List(ctx context.Context, offset, limit int) ([]Voucher, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, v Voucher) (int64, error)
	UpdateAvailability(ctx context.Context, id int64, available bool) error
}

type VoucherGORMDAO struct {
	db *egorm.Component
}

func NewVoucherGORMDAO(db *egorm.Component) VoucherDAO {
	return &VoucherGORMDAO{db: db}
}

func (d *VoucherGORMDAO) FindByID(ctx context.Context, id int64) (Voucher, error) {
	var res Voucher
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *VoucherGORMDAO) FindAvailableByID(ctx context.Context, id int64) (Voucher, error) {
	var res Voucher
	err := d.db.WithContext(ctx).
		Where("id = ? AND disponivel = ?", id, true).
		First(&res).Error
	return res, err
}

func (d *VoucherGORMDAO) List(ctx context.Context, offset, limit int) ([]Voucher, error) {
	var res []Voucher
	err := d.db.WithContext(ctx).
		Where("disponivel = ?", true).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *VoucherGORMDAO) Count(ctx context.Context) (int64, error) {
	var total int64
	err := d.db.WithContext(ctx).Model(&Voucher{}).
		Where("disponivel = ?", true).
		Count(&total).Error
	return total, err
}

func (d *VoucherGORMDAO) Create(ctx context.Context, v Voucher) (int64, error) {
	now := time.Now().UnixMilli()
	v.Ctime, v.Utime = now, now
	err := d.db.WithContext(ctx).Create(&v).Error
	return v.Id, err
}

func (d *VoucherGORMDAO) UpdateAvailability(ctx context.Context, id int64, available bool) error {
	return d.db.WithContext(ctx).Model(&Voucher{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"disponivel": available,
			"utime":      time.Now().UnixMilli(),
		}).Error
}

// Voucher 列名保留葡语商品模型
type Voucher struct {
	Id         int64  `gorm:"primaryKey;autoIncrement;comment:体验券自增ID"`
	Nome       string `gorm:"type:varchar(255);not null;comment:体验券名称"`
	Descricao  string `gorm:"not null;comment:体验券描述"`
	Preco      int64  `gorm:"not null;comment:价格;单位为欧分, 999表示9.99欧元"`
	Disponivel bool   `gorm:"not null;default:true;index:idx_disponivel;comment:是否可售"`
	Ctime      int64
	Utime      int64
}

func (Voucher) TableName() string {
	return "vouchers"
}
