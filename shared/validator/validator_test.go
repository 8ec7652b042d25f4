package validator_test

import (
	"strings"
	"testing"
	"zentravel/shared/validator"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Text   string `json:"text" validate:"required,max=10"`
	Amount int    `json:"amount" validate:"omitempty,min=1"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name:    "valid body",
			body:    `{"text":"castle","amount":2}`,
			wantErr: false,
		},
		{
			name:    "missing required field",
			body:    `{"amount":2}`,
			wantErr: true,
		},
		{
			name:    "text too long",
			body:    `{"text":"a very long query string"}`,
			wantErr: true,
		},
		{
			name:    "malformed json",
			body:    `{"text":`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := sampleRequest{}
			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("2026-02-15", "datetime=2006-01-02"))
	assert.Error(t, validator.ValidateVar("15/02/2026", "datetime=2006-01-02"))
	assert.Error(t, validator.ValidateVar("", "required"))
}
