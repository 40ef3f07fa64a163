package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/domain"
)

type PortfolioHandler struct {
	portfolioUC domain.PortfolioUsecase
}

func NewPortfolioHandler(public *gin.RouterGroup, portfolioUC domain.PortfolioUsecase) {
	handler := &PortfolioHandler{portfolioUC: portfolioUC}

	public.GET("/portfolio/owner", handler.Owner)
}

// Owner godoc
// @Summary      Get portfolio owner information
// @Description  Static document describing the site owner
// @Tags         portfolio
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /portfolio/owner [get]
func (h *PortfolioHandler) Owner(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"portfolio": h.portfolioUC.Owner()})
}
