package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/Astemirdum/livro-service/livro/internal/errs"
	"github.com/Astemirdum/livro-service/livro/internal/model"
	"github.com/Astemirdum/livro-service/pkg/metrics"
	md "github.com/Astemirdum/livro-service/pkg/middleware"
	"github.com/Astemirdum/livro-service/pkg/validate"
	_ "github.com/Astemirdum/livro-service/swagger"
)

type Handler struct {
	livroSvc LivroService
	metrics  *metrics.Metrics
	log      *zap.Logger
}

func New(livroSvc LivroService, log *zap.Logger) *Handler {
	return &Handler{
		livroSvc: livroSvc,
		metrics:  metrics.New("livro"),
		log:      log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.HideBanner = true
	e.HTTPErrorHandler = h.HTTPErrorHandler
	e.Validator = validate.NewCustomValidator()

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(md.CORS())
	e.Use(h.metrics.Middleware())

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/metrics", echo.WrapHandler(h.metrics.Handler()))
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		md.RequestID(),
		md.NewRateLimiter(apiRPS),
	)
	api.POST("/livros", h.CreateLivro)
	api.PUT("/livros", h.UpdateLivro)
	api.GET("/livros", h.GetAllLivros)
	api.GET("/livros/:id", h.GetLivro)
	api.DELETE("/livros/:id", h.DeleteLivro)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	if err := h.livroSvc.Ping(c.Request().Context()); err != nil {
		h.log.Warn("health", zap.Error(err))
		return c.String(http.StatusServiceUnavailable, "DOWN")
	}
	return c.String(http.StatusOK, "OK")
}

// CreateLivro godoc
// @Summary Create a livro
// @Tags livros
// @Accept json
// @Produce json
// @Param livro body model.Livro true "livro without id"
// @Success 201 {object} model.Livro
// @Failure 400 {object} Problem
// @Router /api/livros [post]
func (h *Handler) CreateLivro(c echo.Context) error {
	var livro model.Livro
	if err := c.Bind(&livro); err != nil {
		return err
	}
	if err := c.Validate(livro); err != nil {
		return err
	}
	if livro.ID != nil {
		return errs.ErrIDExists
	}

	result, err := h.livroSvc.Create(c.Request().Context(), livro)
	if err != nil {
		return err
	}
	id := strconv.FormatInt(*result.ID, 10)
	c.Response().Header().Set(echo.HeaderLocation, "/api/livros/"+id)
	setEntityCreationAlert(c, errs.EntityName, id)
	return c.JSON(http.StatusCreated, result)
}

// UpdateLivro godoc
// @Summary Replace an existing livro
// @Tags livros
// @Accept json
// @Produce json
// @Param livro body model.Livro true "livro with id"
// @Success 200 {object} model.Livro
// @Failure 400 {object} Problem
// @Router /api/livros [put]
func (h *Handler) UpdateLivro(c echo.Context) error {
	var livro model.Livro
	if err := c.Bind(&livro); err != nil {
		return err
	}
	if err := c.Validate(livro); err != nil {
		return err
	}
	if livro.ID == nil {
		return errs.ErrIDNull
	}

	result, err := h.livroSvc.Update(c.Request().Context(), livro)
	if err != nil {
		return err
	}
	setEntityUpdateAlert(c, errs.EntityName, strconv.FormatInt(*result.ID, 10))
	return c.JSON(http.StatusOK, result)
}

// GetAllLivros godoc
// @Summary List livros
// @Tags livros
// @Produce json
// @Param sort query []string false "property[,asc|desc]" collectionFormat(multi)
// @Success 200 {array} model.Livro
// @Failure 400 {object} Problem
// @Router /api/livros [get]
func (h *Handler) GetAllLivros(c echo.Context) error {
	sort, err := parseSort(c.QueryParams()["sort"])
	if err != nil {
		return err
	}
	livros, err := h.livroSvc.List(c.Request().Context(), sort)
	if err != nil {
		return err
	}
	if livros == nil {
		livros = []model.Livro{}
	}
	return c.JSON(http.StatusOK, livros)
}

// GetLivro godoc
// @Summary Get a livro by id
// @Tags livros
// @Produce json
// @Param id path int true "livro id"
// @Success 200 {object} model.Livro
// @Failure 404 {object} Problem
// @Router /api/livros/{id} [get]
func (h *Handler) GetLivro(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	livro, err := h.livroSvc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, livro)
}

// DeleteLivro godoc
// @Summary Delete a livro by id
// @Tags livros
// @Param id path int true "livro id"
// @Success 200
// @Router /api/livros/{id} [delete]
func (h *Handler) DeleteLivro(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.livroSvc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	setEntityDeletionAlert(c, errs.EntityName, strconv.FormatInt(id, 10))
	return c.NoContent(http.StatusOK)
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errs.ErrInvalidID
	}
	return id, nil
}
