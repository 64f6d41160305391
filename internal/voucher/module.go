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

package voucher

import (
	"sync"

	"github.com/ecodeclub/voucherhub/internal/voucher/internal/domain"
	"github.com/ecodeclub/voucherhub/internal/voucher/internal/repository"
	"github.com/ecodeclub/voucherhub/internal/voucher/internal/repository/dao"
	"github.com/ecodeclub/voucherhub/internal/voucher/internal/service"
	"github.com/ecodeclub/voucherhub/internal/voucher/internal/web"
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
	Voucher      = domain.Voucher
)

// ErrVoucherNotFound 给其他模块用的哨兵错误
var ErrVoucherNotFound = repository.ErrVoucherNotFound

var ServiceSet = wire.NewSet(
	InitTablesOnce,
	repository.NewVoucherRepository,
	service.NewService)

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.VoucherDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewVoucherGORMDAO(db)
}
