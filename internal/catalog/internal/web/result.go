package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/voucherhub/internal/catalog/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	experienceNotFoundResult = ginx.Result{
		Code: errs.ExperienceNotFound.Code,
		Msg:  errs.ExperienceNotFound.Msg,
	}
)
