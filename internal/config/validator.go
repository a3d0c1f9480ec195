package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterStructValidation(validateJyutpingPair, JyutpingConfig{})
	if err := validate.RegisterTranslation("jyutping_pair", trans, func(ut ut.Translator) error {
		return ut.Add("jyutping_pair", "{0} must be set together with {1}", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("jyutping_pair", strings.TrimPrefix(fe.Namespace(), "Config."), fe.Param())
		return t
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to register jyutping_pair translation: %w", err)
	}

	return validate, trans, nil
}

// validateJyutpingPair requires both Jyutping sources or none of them.
func validateJyutpingPair(sl validator.StructLevel) {
	jyutping := sl.Current().Interface().(JyutpingConfig)
	switch {
	case jyutping.CharURL != "" && jyutping.WordURL == "":
		sl.ReportError(jyutping.WordURL, "word_url", "WordURL", "jyutping_pair", "jyutping.char_url")
	case jyutping.CharURL == "" && jyutping.WordURL != "":
		sl.ReportError(jyutping.CharURL, "char_url", "CharURL", "jyutping_pair", "jyutping.word_url")
	}
}
