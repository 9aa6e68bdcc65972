package httpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Nickname string `json:"nickname,omitempty" validate:"max=5"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.Empty(t, ValidateStruct(sampleReq{Username: "alice", Password: "pw"}))
	})

	t.Run("missing fields use json names", func(t *testing.T) {
		details := ValidateStruct(sampleReq{})
		assert.Equal(t, []ErrorDetail{
			{Field: "username", Message: "username is required"},
			{Field: "password", Message: "password is required"},
		}, details)
	})

	t.Run("max", func(t *testing.T) {
		details := ValidateStruct(sampleReq{Username: "a", Password: "b", Nickname: "toolong"})
		assert.Equal(t, []ErrorDetail{{Field: "nickname", Message: "nickname must be at most 5 characters"}}, details)
	})

	t.Run("non-struct input", func(t *testing.T) {
		details := ValidateStruct("not a struct")
		assert.Len(t, details, 1)
	})
}
