package middleware_test

import (
	"net/http"
	"net/http/httptest"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"potshot/internal/http/middleware"
)

var _ = Describe("RequestIDMiddleware", func() {
	It("tags every request with a UUID", func() {
		var seen string
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(middleware.RequestIDKey).(string)
		})

		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/shot/pot", nil)
		middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(w, r)

		Expect(seen).NotTo(BeEmpty())
		_, err := uuid.Parse(seen)
		Expect(err).NotTo(HaveOccurred())
		Expect(w.Header().Get("X-Request-Id")).To(Equal(seen))
	})

	It("hands out distinct IDs", func() {
		ids := map[string]bool{}
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ids[r.Context().Value(middleware.RequestIDKey).(string)] = true
		})
		wrapped := middleware.NewRequestIDMiddleware().RequestID(next)

		for range 3 {
			wrapped.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/shot/pot", nil))
		}

		Expect(ids).To(HaveLen(3))
	})
})

var _ = Describe("LoggingMiddleware", func() {
	It("passes the request through untouched", func() {
		called := false
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			w.WriteHeader(http.StatusTeapot)
		})

		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/shot/pot", nil)
		middleware.NewLoggingMiddleware(zap.NewNop().Sugar()).Logging(next).ServeHTTP(w, r)

		Expect(called).To(BeTrue())
		Expect(w.Code).To(Equal(http.StatusTeapot))
	})
})
