package config

import "BloggerPlatform/pkg/validation"

func NewValidator() (*validation.Validator, error) {
	return validation.New()
}
