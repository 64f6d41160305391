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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/voucherhub/internal/catalog/internal/domain"
	"github.com/pkg/errors"
)

const (
	catalogExpiration = 12 * time.Hour
	listKey           = "experiences:all"
)

var ErrCatalogNotCached = errors.New("类目不在缓存里")

// CatalogCache 类目是典型的读多写少数据,整表和单条都进缓存
type CatalogCache interface {
	SetExperiences(ctx context.Context, exps []domain.Experience) error
	GetExperiences(ctx context.Context) ([]domain.Experience, error)
	SetExperience(ctx context.Context, exp domain.Experience) error
	GetExperience(ctx context.Context, slug string) (domain.Experience, error)
	Clear(ctx context.Context, slugs ...string) error
}

type catalogCache struct {
	ec ecache.Cache
}

func NewCatalogCache(ec ecache.Cache) CatalogCache {
	return &catalogCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "catalog:",
		},
	}
}

func (c *catalogCache) SetExperiences(ctx context.Context, exps []domain.Experience) error {
	data, err := json.Marshal(exps)
	if err != nil {
		return errors.Wrap(err, "序列化类目列表失败")
	}
	return c.ec.Set(ctx, listKey, string(data), catalogExpiration)
}

func (c *catalogCache) GetExperiences(ctx context.Context) ([]domain.Experience, error) {
	val := c.ec.Get(ctx, listKey)
	if val.KeyNotFound() {
		return nil, ErrCatalogNotCached
	}
	if val.Err != nil {
		return nil, errors.Wrap(val.Err, "查询缓存出错")
	}
	var exps []domain.Experience
	err := json.Unmarshal([]byte(val.Val.(string)), &exps)
	if err != nil {
		return nil, errors.Wrap(err, "反序列化类目列表失败")
	}
	return exps, nil
}

func (c *catalogCache) SetExperience(ctx context.Context, exp domain.Experience) error {
	data, err := json.Marshal(exp)
	if err != nil {
		return errors.Wrap(err, "序列化类目失败")
	}
	return c.ec.Set(ctx, c.experienceKey(exp.Slug), string(data), catalogExpiration)
}

func (c *catalogCache) GetExperience(ctx context.Context, slug string) (domain.Experience, error) {
	val := c.ec.Get(ctx, c.experienceKey(slug))
	if val.KeyNotFound() {
		return domain.Experience{}, ErrCatalogNotCached
	}
	if val.Err != nil {
		return domain.Experience{}, errors.Wrap(val.Err, "查询缓存出错")
	}
	var exp domain.Experience
	err := json.Unmarshal([]byte(val.Val.(string)), &exp)
	if err != nil {
		return domain.Experience{}, errors.Wrap(err, "反序列化类目失败")
	}
	return exp, nil
}

// Clear 管理端改了数据之后把整表和对应单条一起失效掉
func (c *catalogCache) Clear(ctx context.Context, slugs ...string) error {
	keys := make([]string, 0, len(slugs)+1)
	keys = append(keys, listKey)
	for _, slug := range slugs {
		keys = append(keys, c.experienceKey(slug))
	}
	_, err := c.ec.Delete(ctx, keys...)
	return err
}

func (c *catalogCache) experienceKey(slug string) string {
	return fmt.Sprintf("experience:%s", slug)
}
