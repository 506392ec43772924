package domain

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	ParamTranslation   = "translation"
	ParamMyLanguage    = "myLang"
	ParamOtherLanguage = "otherLang"
)

type TranslationConfig struct {
	Enabled       bool         `json:"enabled"`
	MyLanguage    LanguageCode `json:"myLanguage,omitempty"`
	OtherLanguage LanguageCode `json:"otherLanguage,omitempty"`
}

type QueryParam struct {
	Key   string
	Value string
}

// Validate checks both codes against the catalog. Disabled configs are always valid.
func (c TranslationConfig) Validate(catalog LanguageCatalog) error {
	if !c.Enabled {
		return nil
	}

	for _, code := range []LanguageCode{c.MyLanguage, c.OtherLanguage} {
		if strings.TrimSpace(string(code)) == "" {
			return fmt.Errorf("%w: language is required when translation is enabled", ErrUnrecognizedLanguageCode)
		}
		if !catalog.Contains(code) {
			return fmt.Errorf("%w: %q", ErrUnrecognizedLanguageCode, code)
		}
	}

	return nil
}

// Encode returns the destination parameters for the config, in their fixed order.
// A disabled config encodes to nothing.
func (c TranslationConfig) Encode() []QueryParam {
	if !c.Enabled {
		return nil
	}

	return []QueryParam{
		{Key: ParamTranslation, Value: "true"},
		{Key: ParamMyLanguage, Value: string(c.MyLanguage)},
		{Key: ParamOtherLanguage, Value: string(c.OtherLanguage)},
	}
}

// DecodeTranslation reads the parameters produced by Encode. Codes are taken
// verbatim; the producer is responsible for validating them.
func DecodeTranslation(values url.Values) TranslationConfig {
	if values.Get(ParamTranslation) != "true" {
		return TranslationConfig{}
	}

	return TranslationConfig{
		Enabled:       true,
		MyLanguage:    LanguageCode(values.Get(ParamMyLanguage)),
		OtherLanguage: LanguageCode(values.Get(ParamOtherLanguage)),
	}
}

func encodeQuery(params []QueryParam) string {
	if len(params) == 0 {
		return ""
	}

	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, url.QueryEscape(p.Key)+"="+url.QueryEscape(p.Value))
	}

	return "?" + strings.Join(parts, "&")
}
