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

package order

import (
	"sync"

	"github.com/ecodeclub/voucherhub/internal/order/internal/domain"
	"github.com/ecodeclub/voucherhub/internal/order/internal/repository"
	"github.com/ecodeclub/voucherhub/internal/order/internal/repository/dao"
	"github.com/ecodeclub/voucherhub/internal/order/internal/service"
	"github.com/ecodeclub/voucherhub/internal/order/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

type Module struct {
	Svc      Service
	AdminHdl *AdminHandler
}

type (
	AdminHandler = web.AdminHandler
	Service      = service.Service
	Order        = domain.Order
	OrderStatus  = domain.OrderStatus
	Voucher      = domain.Voucher
)

const (
	StatusPending = domain.StatusPending
	StatusPaid    = domain.StatusPaid
)

// ErrOrderNotFound 给支付回调用的哨兵错误
var ErrOrderNotFound = repository.ErrOrderNotFound

// ErrDuplicatedOrder 同一个支付会话重复建单
var ErrDuplicatedOrder = repository.ErrDuplicatedOrder

var ServiceSet = wire.NewSet(
	InitTablesOnce,
	repository.NewRepository,
	service.NewService)

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.OrderDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewOrderGORMDAO(db)
}
