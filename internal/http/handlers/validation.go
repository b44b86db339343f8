package handlers

import (
	"strings"
)

type ProductValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateProduct(p ProductRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ProductValidationError{Field: "name", Description: "name is required"})
	}
	if p.Price == nil {
		errs = append(errs, ProductValidationError{Field: "price", Description: "price is required"})
	} else if *p.Price < 0 {
		errs = append(errs, ProductValidationError{Field: "price", Description: "price must be zero or positive"})
	}
	if strings.TrimSpace(p.ImageURL) == "" {
		errs = append(errs, ProductValidationError{Field: "image_url", Description: "image_url is required"})
	}
	return errs
}
