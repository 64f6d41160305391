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

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrDataNotFound = gorm.ErrRecordNotFound

type CatalogDAO interface {
	ListExperiences(ctx context.Context) ([]Experience, error)
	FindExperienceBySlug(ctx context.Context, slug string) (Experience, error)
	FindExperienceByID(ctx context.Context, id int64) (Experience, error)
	FindPartnerBySlug(ctx context.Context, slug string) (Partner, error)
	PartnersByExperienceIDs(ctx context.Context, ids []int64) ([]Partner, error)
	SaveExperience(ctx context.Context, exp Experience) (int64, error)
	SavePartner(ctx context.Context, p Partner) (int64, error)
}

type CatalogGORMDAO struct {
	db *egorm.Component
}

func NewCatalogGORMDAO(db *egorm.Component) CatalogDAO {
	return &CatalogGORMDAO{db: db}
}

func (d *CatalogGORMDAO) ListExperiences(ctx context.Context) ([]Experience, error) {
	var res []Experience
	err := d.db.WithContext(ctx).Order("id ASC").Find(&res).Error
	return res, err
}

func (d *CatalogGORMDAO) FindExperienceBySlug(ctx context.Context, slug string) (Experience, error) {
	var res Experience
	err := d.db.WithContext(ctx).Where("slug = ?", slug).First(&res).Error
	return res, err
}

func (d *CatalogGORMDAO) FindExperienceByID(ctx context.Context, id int64) (Experience, error) {
	var res Experience
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *CatalogGORMDAO) FindPartnerBySlug(ctx context.Context, slug string) (Partner, error) {
	var res Partner
	err := d.db.WithContext(ctx).Where("slug = ?", slug).First(&res).Error
	return res, err
}

func (d *CatalogGORMDAO) PartnersByExperienceIDs(ctx context.Context, ids []int64) ([]Partner, error) {
	var res []Partner
	err := d.db.WithContext(ctx).
		Where("experience_id IN ?", ids).
		Order("id ASC").
		Find(&res).Error
	return res, err
}

// SaveExperience 按 slug 幂等写入,重复导入只更新文案
func (d *CatalogGORMDAO) SaveExperience(ctx context.Context, exp Experience) (int64, error) {
	now := time.Now().UnixMilli()
	exp.Ctime, exp.Utime = now, now
	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title_en", "title_pt",
			"badge_en", "badge_pt",
			"description_en", "description_pt",
			"utime",
		}),
	}).Create(&exp).Error
	return exp.Id, err
}

func (d *CatalogGORMDAO) SavePartner(ctx context.Context, p Partner) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime, p.Utime = now, now
	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"experience_id", "name", "location",
			"price_original", "price_discount", "savings", "discount_label",
			"promo_code", "official_url", "images", "icon",
			"detailed_description_en", "detailed_description_pt",
			"utime",
		}),
	}).Create(&p).Error
	return p.Id, err
}

type Experience struct {
	Id            int64  `gorm:"primaryKey;autoIncrement;comment:类目自增ID"`
	Slug          string `gorm:"type:varchar(128);not null;uniqueIndex:uniq_experience_slug;comment:类目标识"`
	TitleEn       string `gorm:"type:varchar(255);not null;comment:标题英文"`
	TitlePt       string `gorm:"type:varchar(255);not null;comment:标题葡语"`
	BadgeEn       string `gorm:"type:varchar(128);comment:角标英文"`
	BadgePt       string `gorm:"type:varchar(128);comment:角标葡语"`
	DescriptionEn string `gorm:"comment:描述英文"`
	DescriptionPt string `gorm:"comment:描述葡语"`
	Ctime         int64
	Utime         int64
}

func (Experience) TableName() string {
	return "experiences"
}

type Partner struct {
	Id                    int64                     `gorm:"primaryKey;autoIncrement;comment:合作方自增ID"`
	ExperienceId          int64                     `gorm:"not null;index:idx_partner_experience_id;comment:所属类目ID"`
	Slug                  string                    `gorm:"type:varchar(128);not null;uniqueIndex:uniq_partner_slug;comment:合作方标识"`
	Name                  string                    `gorm:"type:varchar(255);not null;comment:合作方名称"`
	Location              string                    `gorm:"type:varchar(255);comment:所在地"`
	PriceOriginal         string                    `gorm:"type:varchar(64);comment:划线价文案"`
	PriceDiscount         string                    `gorm:"type:varchar(64);comment:折后价文案"`
	Savings               string                    `gorm:"type:varchar(64);comment:省下多少的文案"`
	DiscountLabel         string                    `gorm:"type:varchar(64);comment:折扣角标文案"`
	PromoCode             string                    `gorm:"type:varchar(64);comment:线下核销用的推广码"`
	OfficialUrl           string                    `gorm:"type:varchar(512);comment:官网链接"`
	Images                sqlx.JsonColumn[[]string] `gorm:"type:json;comment:图片列表JSON"`
	Icon                  string                    `gorm:"type:varchar(512);comment:图标链接"`
	DetailedDescriptionEn string                    `gorm:"comment:详细介绍英文"`
	DetailedDescriptionPt string                    `gorm:"comment:详细介绍葡语"`
	Ctime                 int64
	Utime                 int64
}

func (Partner) TableName() string {
	return "partners"
}
