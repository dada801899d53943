package handler

import (
	"github.com/labstack/echo/v4"
)

const (
	applicationName = "webliotecaApp"

	HeaderAlert  = "X-" + applicationName + "-alert"
	HeaderError  = "X-" + applicationName + "-error"
	HeaderParams = "X-" + applicationName + "-params"
)

func setAlert(c echo.Context, message, param string) {
	h := c.Response().Header()
	h.Set(HeaderAlert, message)
	h.Set(HeaderParams, param)
}

func setEntityCreationAlert(c echo.Context, entityName, param string) {
	setAlert(c, applicationName+"."+entityName+".created", param)
}

func setEntityUpdateAlert(c echo.Context, entityName, param string) {
	setAlert(c, applicationName+"."+entityName+".updated", param)
}

func setEntityDeletionAlert(c echo.Context, entityName, param string) {
	setAlert(c, applicationName+"."+entityName+".deleted", param)
}

func setFailureAlert(c echo.Context, entityName, errorKey string) {
	h := c.Response().Header()
	h.Set(HeaderError, "error."+errorKey)
	h.Set(HeaderParams, entityName)
}
