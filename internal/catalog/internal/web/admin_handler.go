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
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/voucherhub/internal/catalog/internal/domain"
	"github.com/ecodeclub/voucherhub/internal/catalog/internal/repository"
	"github.com/ecodeclub/voucherhub/internal/catalog/internal/service"
	"github.com/ecodeclub/voucherhub/internal/pkg/i18n"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	server.POST("/catalog/experience/save", ginx.B[SaveExperienceReq](h.SaveExperience))
	server.POST("/catalog/partner/save", ginx.B[SavePartnerReq](h.SavePartner))
}

func (h *AdminHandler) SaveExperience(ctx *ginx.Context, req SaveExperienceReq) (ginx.Result, error) {
	id, err := h.svc.SaveExperience(ctx.Request.Context(), domain.Experience{
		Slug:        req.Slug,
		Title:       i18n.Text{EN: req.TitleEn, PT: req.TitlePt},
		Badge:       i18n.Text{EN: req.BadgeEn, PT: req.BadgePt},
		Description: i18n.Text{EN: req.DescriptionEn, PT: req.DescriptionPt},
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: SaveResp{ID: id},
	}, nil
}

func (h *AdminHandler) SavePartner(ctx *ginx.Context, req SavePartnerReq) (ginx.Result, error) {
	id, err := h.svc.SavePartner(ctx.Request.Context(), domain.Partner{
		ExperienceID:  req.ExperienceID,
		Slug:          req.Slug,
		Name:          req.Name,
		Location:      req.Location,
		PriceOriginal: req.PriceOriginal,
		PriceDiscount: req.PriceDiscount,
		Savings:       req.Savings,
		DiscountLabel: req.DiscountLabel,
		PromoCode:     req.PromoCode,
		OfficialURL:   req.OfficialURL,
		Images:        req.Images,
		Icon:          req.Icon,
		DetailedDescription: i18n.Text{
			EN: req.DetailedDescriptionEn,
			PT: req.DetailedDescriptionPt,
		},
	})
	if errors.Is(err, repository.ErrExperienceNotFound) {
		return experienceNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: SaveResp{ID: id},
	}, nil
}
