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

package redemption

import (
	"fmt"
	"strings"

	"github.com/lithammer/shortuuid/v4"
)

const (
	prefix       = "VOUCHER"
	suffixLength = 8
)

// ShortUUIDGenerateFunc 定义生成ShortUUID的函数类型
type ShortUUIDGenerateFunc func() string

// Generator 生成对用户展示的兑换码,形如 VOUCHER-XXXXXXXX。
// 唯一性靠随机源尽力保证,不做全局强保证
type Generator struct {
	shortUUIDGenFunc ShortUUIDGenerateFunc
}

// NewGeneratorWith 创建一个Generator实例
func NewGeneratorWith(uuidGen ShortUUIDGenerateFunc) *Generator {
	return &Generator{shortUUIDGenFunc: uuidGen}
}

// NewGenerator 创建一个Generator实例
func NewGenerator() *Generator {
	return NewGeneratorWith(func() string { return shortuuid.New() })
}

func (g *Generator) Generate() string {
	uuid := strings.ToUpper(g.shortUUIDGenFunc())
	return fmt.Sprintf("%s-%s", prefix, uuid[:suffixLength])
}
