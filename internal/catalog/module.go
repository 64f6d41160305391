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

package catalog

import (
	"sync"

	"github.com/ecodeclub/voucherhub/internal/catalog/internal/domain"
	"github.com/ecodeclub/voucherhub/internal/catalog/internal/repository"
	"github.com/ecodeclub/voucherhub/internal/catalog/internal/repository/cache"
	"github.com/ecodeclub/voucherhub/internal/catalog/internal/repository/dao"
	"github.com/ecodeclub/voucherhub/internal/catalog/internal/service"
	"github.com/ecodeclub/voucherhub/internal/catalog/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

type Module struct {
	Svc      Service
	Hdl      *Handler
	AdminHdl *AdminHandler
}

type (
	Handler      = web.Handler
	AdminHandler = web.AdminHandler
	Service      = service.Service
	Experience   = domain.Experience
	Partner      = domain.Partner
)

var (
	ErrExperienceNotFound = repository.ErrExperienceNotFound
	ErrPartnerNotFound    = repository.ErrPartnerNotFound
)

var ServiceSet = wire.NewSet(
	InitTablesOnce,
	cache.NewCatalogCache,
	repository.NewCatalogRepository,
	service.NewService)

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.CatalogDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewCatalogGORMDAO(db)
}
