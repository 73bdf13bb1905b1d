package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rechange/cmd/api/dto"
	"rechange/cmd/api/services"
)

// CreateSessionHandler godoc
// @Summary      세션 생성
// @Description  빈 세션을 만들고 활성 세션으로 전환한다. (UI의 '+ 새 프로젝트' 버튼)
// @Tags         sessions
// @Produce      json
// @Success      200  {object}  dto.SessionDTO
// @Router       /sessions [post]
func CreateSessionHandler(sessionSvc *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, sessionSvc.Create())
	}
}

// ListSessionsHandler godoc
// @Summary      세션 목록 조회
// @Description  세션 목록을 최신순으로 조회한다. 활성 세션 id를 함께 반환한다.
// @Tags         sessions
// @Produce      json
// @Success      200  {object}  dto.ListSessionsResponse
// @Router       /sessions [get]
func ListSessionsHandler(sessionSvc *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, sessionSvc.List())
	}
}

// GetSessionHandler godoc
// @Summary      세션 상세 조회
// @Description  특정 세션의 상세 정보(메시지 목록 포함)를 조회한다.
// @Tags         sessions
// @Produce      json
// @Param        id   path      string  true  "세션 ID"
// @Success      200  {object}  dto.SessionDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /sessions/{id} [get]
func GetSessionHandler(sessionSvc *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := sessionSvc.Get(c.Param("id"))
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// DeleteSessionHandler godoc
// @Summary      세션 삭제
// @Description  세션을 삭제한다. 활성 세션을 지우면 다음 세션이 활성화되고,
// @Description  마지막 세션을 지우면 기본 세션이 새로 만들어진다.
// @Tags         sessions
// @Produce      json
// @Param        id   path      string  true  "세션 ID"
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /sessions/{id} [delete]
func DeleteSessionHandler(sessionSvc *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := sessionSvc.Delete(c.Param("id")); err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "deleted"})
	}
}

// ActivateSessionHandler godoc
// @Summary      세션 전환
// @Description  특정 세션을 활성 세션으로 전환한다. 없는 id는 404로 거부된다.
// @Tags         sessions
// @Produce      json
// @Param        id   path      string  true  "세션 ID"
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /sessions/{id}/activate [post]
func ActivateSessionHandler(sessionSvc *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := sessionSvc.Switch(c.Param("id")); err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "activated"})
	}
}

// RetitleSessionHandler godoc
// @Summary      세션 이름 변경
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id    path      string                     true  "세션 ID"
// @Param        body  body      dto.RetitleSessionRequest  true  "new title"
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /sessions/{id} [patch]
func RetitleSessionHandler(sessionSvc *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.RetitleSessionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}
		if err := sessionSvc.Retitle(c.Param("id"), req.Title); err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "retitled"})
	}
}
