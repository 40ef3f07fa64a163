package v1_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "portfolio-backend/internal/delivery/http/v1"
	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/usecase"
)

func TestPortfolioOwner(t *testing.T) {
	gin.SetMode(gin.TestMode)

	owner := &domain.OwnerProfile{
		Name:  "Jane Doe",
		Title: "Full Stack Developer",
		Skills: map[string][]string{
			"backend": {"Go", "PostgreSQL"},
		},
		Contact: domain.OwnerContact{Email: "jane@example.com"},
	}

	r := gin.New()
	public := r.Group("")
	v1.NewPortfolioHandler(public, usecase.NewPortfolioUsecase(owner))

	w := doJSON(r, http.MethodGet, "/portfolio/owner", "")

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Portfolio domain.OwnerProfile `json:"portfolio"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Jane Doe", body.Portfolio.Name)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, body.Portfolio.Skills["backend"])
}
