// Package validate 提供实体持久化前的校验
// 基于 go-playground/validator，所有规则一次性全部执行，
// 违反的规则累积为一个 errorx.CodeValidation 错误，而不是遇错即停
package validate

import (
	"errors"
	"reflect"
	"strings"

	"kama_social_server/pkg/errorx"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	validate *validator.Validate
	trans    ut.Translator
)

func init() {
	validate = validator.New()

	// 注册一个获取 json tag 的自定义方法
	// 报错信息使用 json 字段名（如 firstName），而不是 Go 结构体字段名
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return fld.Name
		}
		return name
	})

	// 实体校验消息统一使用英文翻译器
	enT := en.New()
	uni := ut.New(enT, enT)
	trans, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, trans)
}

// Struct 校验实体上 validate tag 声明的全部规则
// 校验通过返回 nil；否则返回携带全部违规消息的 CodeValidation 错误
func Struct(entity any) error {
	err := validate.Struct(entity)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		// 违反的规则全部收集，逐条翻译成可读消息
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fe.Translate(trans))
		}
		return errorx.NewValidation(msgs)
	}

	// InvalidValidationError 等非规则类错误
	return errorx.Wrap(err, errorx.CodeValidation, "实体校验失败")
}
