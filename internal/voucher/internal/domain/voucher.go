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

package domain

// Voucher 体验券。除 Available 之外字段创建后不再变更,
// Available 由运营在库存售罄时手动下架
type Voucher struct {
	ID          int64
	Name        string
	Description string
	// Price 单位为欧分, 999 表示 9.99 欧元
	Price     int64
	Available bool
	Ctime     int64
	Utime     int64
}
