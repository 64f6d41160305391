package test

// Result 管理端接口的统一响应体。公开接口(/vouchers、webhook、catalog)
// 返回的是约定死的裸 JSON,不用这个结构
type Result[T any] struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data T      `json:"data"`
}
