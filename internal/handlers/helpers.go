package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Единый конверт ответа: {success, message|data}.

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

func serverError(c *gin.Context) {
	fail(c, http.StatusInternalServerError, "Внутренняя ошибка сервера")
}

// parseIDParam читает :id из пути; при мусоре отвечает 400 сам.
func parseIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		fail(c, http.StatusBadRequest, "Некорректный идентификатор")
		return 0, false
	}
	return id, true
}

// monthYearQuery читает необязательные параметры month и year.
func monthYearQuery(c *gin.Context) (month, year int) {
	month, _ = strconv.Atoi(c.Query("month"))
	year, _ = strconv.Atoi(c.Query("year"))
	return month, year
}
