package handler

import (
	"net/http"

	"sensitive-places-api/internal/models"

	"github.com/gin-gonic/gin"
)

// Categories handles GET /categories requests
//
//	@Summary	List the place categories with their display info
//	@Tags		nearby
//	@Produce	json
//	@Success	200	{array}	models.CategoryInfo
//	@Router		/categories [get]
func Categories(c *gin.Context) {
	c.JSON(http.StatusOK, models.AllCategoryInfo())
}
