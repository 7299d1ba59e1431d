package handler

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	zhTranslations "github.com/go-playground/validator/v10/translations/zh"
)

// translator 校验错误翻译器，InitTrans 中初始化
var translator ut.Translator

// InitTrans 初始化 validator 的错误信息翻译
// locale 支持 "zh" 和 "en"，其他值回退到英文
func InitTrans(locale string) error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("gin validator engine type unexpected")
	}

	// 错误信息中使用 json tag 字段名而不是 Go 字段名
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	zhT := zh.New()
	enT := en.New()
	uni := ut.New(enT, zhT, enT)

	translator, ok = uni.GetTranslator(locale)
	if !ok {
		return fmt.Errorf("uni.GetTranslator(%s) failed", locale)
	}

	switch locale {
	case "zh":
		return zhTranslations.RegisterDefaultTranslations(v, translator)
	default:
		return enTranslations.RegisterDefaultTranslations(v, translator)
	}
}

// removeTopStruct 去掉翻译结果 key 中的结构体名前缀
// "RegisterRequest.email" -> "email"
func removeTopStruct(fields map[string]string) map[string]string {
	result := make(map[string]string, len(fields))
	for field, errMsg := range fields {
		result[field[strings.Index(field, ".")+1:]] = errMsg
	}
	return result
}
