package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrResponse is the error envelope for every non-200 reply.
type ErrResponse struct {
	Detail string `json:"detail"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

func Error(detail string) ErrResponse {
	return ErrResponse{Detail: detail}
}

func Ok() StatusResponse {
	return StatusResponse{Status: "ok"}
}

// ValidationError flattens validator output into one detail line naming
// the offending fields.
func ValidationError(errs validator.ValidationErrors) ErrResponse {
	var msgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("field %s is required", err.Field()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("field %s is shorter than %s", err.Field(), err.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("field %s is longer than %s", err.Field(), err.Param()))
		case "url":
			msgs = append(msgs, fmt.Sprintf("field %s is not a valid URL", err.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("field %s is not valid", err.Field()))
		}
	}

	return Error(strings.Join(msgs, "; "))
}
