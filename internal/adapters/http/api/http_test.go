package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/okian/tripace/internal/adapters/http/api"
	service "github.com/okian/tripace/internal/app"
	"github.com/okian/tripace/internal/domain/estimate"
	"github.com/okian/tripace/internal/domain/race"
	"github.com/okian/tripace/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(logger.WithOutput(io.Discard)); err != nil {
		panic(err)
	}
}

// failingCalculator returns a computation error for every request.
type failingCalculator struct {
	*service.Calculator
}

func (f failingCalculator) Calculate(context.Context, service.Request) (*service.Result, error) {
	return nil, fmt.Errorf("estimate olympic: %w", &estimate.ComputationError{Reason: "bike rate must be positive"})
}

func newMux(deps api.Dependencies, stats api.StatsProvider, opts ...api.ServerOption) *http.ServeMux {
	mux := http.NewServeMux()
	api.NewServer(deps, stats, opts...).Register(context.Background(), mux)
	return mux
}

func do(mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	var r io.Reader = http.NoBody
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func decode(w *httptest.ResponseRecorder) map[string]any {
	var out map[string]any
	So(json.Unmarshal(w.Body.Bytes(), &out), ShouldBeNil)
	return out
}

func TestEstimateEndpoint(t *testing.T) {
	Convey("Given an API server backed by a calculator", t, func() {
		calc := service.New()
		mux := newMux(calc, calc)

		Convey("When posting the default split form", func() {
			w := do(mux, http.MethodPost, "/estimate", `{"category":"olympic","split":{"swim_minutes":2,"swim_seconds":0,"bike_kmh":30,"run_minutes":5,"run_seconds":0}}`)

			Convey("Then it should return the full result", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Content-Type"), ShouldEqual, "application/json; charset=utf-8")
				So(w.Header().Get(api.RequestIDHeader), ShouldNotBeEmpty)

				body := decode(w)
				So(body["category"], ShouldEqual, "olympic")
				So(body["formatted"].(map[string]any)["total"], ShouldEqual, "02:40:00")
				So(body["ranking"].(map[string]any)["weakest"].(map[string]any)["discipline"], ShouldEqual, "bike")
				So(body["plan"].(map[string]any)["week"], ShouldHaveLength, 7)
			})
		})

		Convey("When posting the decimal form with a request id", func() {
			req := httptest.NewRequest(http.MethodPost, "/estimate", strings.NewReader(`{"category":"sprint","decimal":{"swim_pace":1.5,"bike_kmh":35,"run_pace":4}}`))
			req.Header.Set(api.RequestIDHeader, "abc-123")
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it should echo the id and classify every leg excellent", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get(api.RequestIDHeader), ShouldEqual, "abc-123")
				for _, e := range decode(w)["evaluations"].([]any) {
					So(e.(map[string]any)["tier"], ShouldEqual, "excellent")
				}
			})
		})

		Convey("When posting out-of-range values", func() {
			w := do(mux, http.MethodPost, "/estimate", `{"category":"olympic","split":{"swim_minutes":11,"swim_seconds":0,"bike_kmh":70,"run_minutes":5,"run_seconds":75}}`)

			Convey("Then it should list every failing field", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
				body := decode(w)
				So(body["code"], ShouldEqual, "validation_failed")
				fields := body["fields"].([]any)
				names := make([]string, 0, len(fields))
				for _, f := range fields {
					names = append(names, f.(map[string]any)["field"].(string))
				}
				So(names, ShouldContain, "swim_minutes")
				So(names, ShouldContain, "bike_kmh")
				So(names, ShouldContain, "run_seconds")
			})
		})

		Convey("When the category is unknown", func() {
			w := do(mux, http.MethodPost, "/estimate", `{"category":"ultra","decimal":{"swim_pace":2,"bike_kmh":30,"run_pace":5}}`)

			Convey("Then it should be a validation failure on category", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
				fields := decode(w)["fields"].([]any)
				So(fields, ShouldHaveLength, 1)
				So(fields[0].(map[string]any)["field"], ShouldEqual, "category")
			})
		})

		Convey("When the body is malformed", func() {
			cases := []string{`{"category":`, `{"category":"olympic","extra":1}`, `{} {}`}
			for _, body := range cases {
				w := do(mux, http.MethodPost, "/estimate", body)
				So(w.Code, ShouldEqual, http.StatusBadRequest)
				So(decode(w)["code"], ShouldEqual, "bad_request")
			}
		})

		Convey("When using the wrong method", func() {
			w := do(mux, http.MethodGet, "/estimate", "")

			Convey("Then it should return 405 with Allow", func() {
				So(w.Code, ShouldEqual, http.StatusMethodNotAllowed)
				So(w.Header().Get("Allow"), ShouldEqual, http.MethodPost)
			})
		})
	})

	Convey("Given a small body cap", t, func() {
		calc := service.New()
		mux := newMux(calc, calc, api.WithMaxBodyBytes(16))

		Convey("When posting a larger body", func() {
			w := do(mux, http.MethodPost, "/estimate", `{"category":"olympic","decimal":{"swim_pace":2,"bike_kmh":30,"run_pace":5}}`)

			Convey("Then it should be rejected as too large", func() {
				So(w.Code, ShouldEqual, http.StatusRequestEntityTooLarge)
				So(decode(w)["code"], ShouldEqual, "payload_too_large")
			})
		})
	})

	Convey("Given a calculator that fails after validation", t, func() {
		calc := service.New()
		mux := newMux(failingCalculator{calc}, calc)

		Convey("When posting a valid body", func() {
			w := do(mux, http.MethodPost, "/estimate", `{"decimal":{"swim_pace":2,"bike_kmh":30,"run_pace":5}}`)

			Convey("Then it should return 500", func() {
				So(w.Code, ShouldEqual, http.StatusInternalServerError)
				So(decode(w)["code"], ShouldEqual, "computation_failed")
			})
		})
	})
}

func TestReadEndpoints(t *testing.T) {
	Convey("Given an API server", t, func() {
		calc := service.New(service.WithDefaultCategory("sprint"))
		mux := newMux(calc, calc)

		Convey("When listing categories", func() {
			w := do(mux, http.MethodGet, "/categories", "")

			Convey("Then the catalog and default should be returned", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				body := decode(w)
				So(body["default"], ShouldEqual, string(race.Sprint))
				cats := body["categories"].([]any)
				So(cats, ShouldHaveLength, 4)
				So(cats[3].(map[string]any)["name"], ShouldEqual, "Ironman")
			})
		})

		Convey("When checking health", func() {
			w := do(mux, http.MethodGet, "/healthz", "")

			Convey("Then it should report ok", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(decode(w)["status"], ShouldEqual, "ok")
			})
		})

		Convey("When reading stats after a calculation", func() {
			do(mux, http.MethodPost, "/estimate", `{"decimal":{"swim_pace":2,"bike_kmh":30,"run_pace":5}}`)
			w := do(mux, http.MethodGet, "/stats", "")

			Convey("Then the counters should be exposed", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				body := decode(w)
				So(body["calculations"], ShouldEqual, float64(1))
				So(body["defaultCategory"], ShouldEqual, "sprint")
				So(body, ShouldContainKey, "goroutines")
			})
		})

		Convey("When scraping metrics after a request", func() {
			do(mux, http.MethodGet, "/healthz", "")
			w := do(mux, http.MethodGet, "/metrics", "")

			Convey("Then the HTTP counters should be present", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, "tripace_estimator_http_requests_total")
			})
		})

		Convey("When posting to a read-only route", func() {
			for _, path := range []string{"/categories", "/healthz", "/stats"} {
				So(do(mux, http.MethodPost, path, "{}").Code, ShouldEqual, http.StatusMethodNotAllowed)
			}
		})
	})

	Convey("Given a nil mux", t, func() {
		calc := service.New()
		So(func() { api.NewServer(calc, calc).Register(context.Background(), nil) }, ShouldPanic)
	})
}
