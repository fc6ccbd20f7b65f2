package models

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductQueryNormalize(t *testing.T) {
	q := ProductQuery{Contains: " Mini-Palmiers ", Sort: "PRICE", Direction: "Desc"}
	q.Normalize()

	assert.Equal(t, ProductQuery{Contains: "mini-palmiers", Sort: "price", Direction: "desc"}, q)
	assert.Equal(t, []string{"mini", "palmiers"}, q.Tokens())
}

func TestProductQueryTokensSkipsEmpty(t *testing.T) {
	assert.Empty(t, ProductQuery{}.Tokens())
	assert.Equal(t, []string{"cake"}, ProductQuery{Contains: "-cake--"}.Tokens())
}

func TestStatusOf(t *testing.T) {
	status, msg := StatusOf(fmt.Errorf("lookup: %w", ErrProductNotFound))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Product not found", msg)

	status, _ = StatusOf(ErrDuplicateFeedback)
	assert.Equal(t, http.StatusConflict, status)

	status, msg = StatusOf(errors.New("connection refused"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, GenericErrorMessage, msg)
}
