package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rechange/cmd/api/services"
)

// ListGalleryHandler godoc
// @Summary      갤러리 조회
// @Description  성공한 생성 결과 전체를 최신순으로 조회한다. 세션을 지워도
// @Description  그 세션이 남긴 갤러리 항목은 유지된다.
// @Tags         gallery
// @Produce      json
// @Success      200  {object}  dto.ListGalleryResponse
// @Router       /gallery [get]
func ListGalleryHandler(gallerySvc *services.GalleryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gallerySvc.List())
	}
}
