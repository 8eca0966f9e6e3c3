// Package server — HTTP-транспорт веб-чата для виджета на сайте
package server

import (
	"context"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/artbeauty/intake-bot/internal/model"
)

// Dialog — обработчик хода свободного чата
type Dialog interface {
	HandleMessage(ctx context.Context, sessionID, text, source string) string
}

// Server — HTTP-сервер веб-чата
type Server struct {
	dialog Dialog
	logger *zap.Logger
	router *gin.Engine
}

type chatRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

type chatResponse struct {
	Answer string `json:"answer"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func New(dialog Dialog, env string, logger *zap.Logger) *Server {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		dialog: dialog,
		logger: logger,
	}

	router := gin.New()
	router.Use(requestLogger(logger), recovery(logger))

	// Виджет встраивается на сторонний сайт, поэтому CORS открыт
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:    []string{"Content-Type", "Authorization"},
	}))

	router.GET("/webchat", s.handleWidget)
	router.POST("/webchat", s.handleChat)

	s.router = router
	return s
}

// Run блокирует до остановки сервера
func (s *Server) Run(addr string) error {
	s.logger.Info("Starting web chat server", zap.String("addr", addr))
	return s.router.Run(addr)
}

// Handler отдаёт http.Handler для тестов
func (s *Server) Handler() http.Handler {
	return s.router
}

// handleWidget отдаёт статичную страницу чата
func (s *Server) handleWidget(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, widgetHTML)
}

// handleChat обрабатывает сообщение из веб-виджета
func (s *Server) handleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	if req.UserID == "" || req.Message == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "user_id and message are required"})
		return
	}

	answer := s.dialog.HandleMessage(c.Request.Context(), "web:"+req.UserID, req.Message, model.SourceWeb)

	c.JSON(http.StatusOK, chatResponse{Answer: answer})
}
