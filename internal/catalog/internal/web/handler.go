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
	"net/http"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/voucherhub/internal/catalog/internal/domain"
	"github.com/ecodeclub/voucherhub/internal/catalog/internal/repository"
	"github.com/ecodeclub/voucherhub/internal/catalog/internal/service"
	"github.com/ecodeclub/voucherhub/internal/pkg/i18n"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// Handler 前台目录接口。响应结构沿用前端静态数据文件的格式,
// 列表挂在 modes 字段下
type Handler struct {
	svc service.Service
	l   *elog.Component
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc: svc,
		l:   elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.GET("/catalog/experiences", h.ListExperiences)
	server.GET("/catalog/experiences/:slug", h.ExperienceBySlug)
	server.GET("/catalog/partners/:slug", h.PartnerBySlug)
}

func (h *Handler) ListExperiences(ctx *gin.Context) {
	locale := i18n.ParseLocale(ctx.Query("lang"))
	exps, err := h.svc.ListExperiences(ctx.Request.Context())
	if err != nil {
		h.l.Error("查询类目列表失败", elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erro ao buscar categorias",
		})
		return
	}
	// 空目录返回空列表,前端直接渲染成空态
	ctx.JSON(http.StatusOK, gin.H{
		"modes": slice.Map(exps, func(idx int, src domain.Experience) Experience {
			return newExperience(src, locale)
		}),
	})
}

func (h *Handler) ExperienceBySlug(ctx *gin.Context) {
	locale := i18n.ParseLocale(ctx.Query("lang"))
	exp, err := h.svc.ExperienceBySlug(ctx.Request.Context(), ctx.Param("slug"))
	if errors.Is(err, repository.ErrExperienceNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{
			"error": "Categoria não encontrada",
		})
		return
	}
	if err != nil {
		h.l.Error("查询类目失败",
			elog.String("slug", ctx.Param("slug")), elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erro ao buscar categoria",
		})
		return
	}
	ctx.JSON(http.StatusOK, newExperience(exp, locale))
}

func (h *Handler) PartnerBySlug(ctx *gin.Context) {
	locale := i18n.ParseLocale(ctx.Query("lang"))
	p, err := h.svc.PartnerBySlug(ctx.Request.Context(), ctx.Param("slug"))
	if errors.Is(err, repository.ErrPartnerNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{
			"error": "Parceiro não encontrado",
		})
		return
	}
	if err != nil {
		h.l.Error("查询合作方失败",
			elog.String("slug", ctx.Param("slug")), elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erro ao buscar parceiro",
		})
		return
	}
	ctx.JSON(http.StatusOK, newPartner(p, locale))
}
