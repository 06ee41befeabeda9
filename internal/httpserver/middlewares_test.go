package httpserver_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
	"github.com/zhulik/tally/internal/httpserver"
)

var errHandler = errors.New("handler failed")

var _ = Describe("Router", func() {
	var router *gin.Engine

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)

		logger := logrus.New()
		logger.SetOutput(io.Discard)

		router = httpserver.NewRouter(logger)
		router.GET("/ok", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
		router.GET("/panic", func(_ *gin.Context) { panic("boom") })
		router.GET("/error", func(c *gin.Context) { c.Error(errHandler) }) //nolint:errcheck
	})

	serve := func(path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		return rec
	}

	It("serves regular requests", func() {
		rec := serve("/ok")

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(MatchJSON(`{"ok":true}`))
	})

	It("turns panics into JSON errors", func() {
		rec := serve("/panic")

		Expect(rec.Code).To(Equal(http.StatusInternalServerError))
		Expect(rec.Body.String()).To(MatchJSON(`{"error":"Internal server error"}`))
	})

	It("turns handler errors into JSON errors", func() {
		rec := serve("/error")

		Expect(rec.Code).To(Equal(http.StatusInternalServerError))
		Expect(rec.Body.String()).To(MatchJSON(`{"error":"Internal server error"}`))
	})
})
