package test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	httpapi "peopledir/internal/http"
	personhandler "peopledir/internal/person/handler"
	"peopledir/internal/person/service"
	personstore "peopledir/internal/person/store/person"
	"peopledir/pkg/testutil"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := testutil.DiscardLogger()
	svc := service.New(personstore.NewInMemory(), service.WithLogger(logger))
	return httpapi.NewRouter(httpapi.RouterDeps{
		Persons: personhandler.New(svc, logger),
		Logger:  logger,
	})
}

func TestRouterPersonLifecycle(t *testing.T) {
	testutil.Given(t, "a router over an empty store", func(t *testing.T) {
		router := newTestRouter(t)

		testutil.When(t, "listing persons before any create", func(t *testing.T) {
			rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/persons"))

			testutil.Then(t, "it should return an empty collection", func(t *testing.T) {
				testutil.AssertStatus(t, rr, http.StatusOK)
				resp := testutil.UnmarshalResponse[personhandler.ListPersonsResponse](t, rr)
				require.NotNil(t, resp.Persons)
				require.Empty(t, resp.Persons)
			})
		})

		testutil.When(t, "creating a person and fetching it back", func(t *testing.T) {
			createRR := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/persons", map[string]string{
				"name":       "Ada Lovelace",
				"birth_date": "1815-12-10",
			}))

			testutil.Then(t, "the create should succeed and the fetch should match", func(t *testing.T) {
				testutil.AssertStatus(t, createRR, http.StatusCreated)
				created := testutil.UnmarshalResponse[personhandler.PersonResponse](t, createRR)
				require.NotEmpty(t, created.ID)

				getRR := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/persons/"+created.ID))
				testutil.AssertStatus(t, getRR, http.StatusOK)
				got := testutil.UnmarshalResponse[personhandler.PersonResponse](t, getRR)
				require.Equal(t, created.ID, got.ID)
				require.Equal(t, "Ada Lovelace", got.Name)
				require.Equal(t, "1815-12-10", got.BirthDate)
			})
		})
	})
}

func TestRouterErrorEnvelopes(t *testing.T) {
	testutil.Given(t, "a router over an empty store", func(t *testing.T) {
		router := newTestRouter(t)

		testutil.When(t, "fetching a person that was never created", func(t *testing.T) {
			rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/persons/3f0a0f6e-1f3e-4a7f-9f57-111111111111"))

			testutil.Then(t, "it should respond 404 with the error envelope", func(t *testing.T) {
				testutil.AssertStatusAndError(t, rr, http.StatusNotFound, "not_found")
			})
		})

		testutil.When(t, "posting with a non-JSON content type", func(t *testing.T) {
			req := testutil.NewRequestWithBody(t, http.MethodPost, "/persons", `name=x`)
			req.Header.Set("Content-Type", "text/plain")
			rr := testutil.DoRequest(router, req)

			testutil.Then(t, "it should respond 415", func(t *testing.T) {
				testutil.AssertStatus(t, rr, http.StatusUnsupportedMediaType)
			})
		})
	})
}

func TestRouterPlatformEndpoints(t *testing.T) {
	testutil.Given(t, "the assembled router", func(t *testing.T) {
		router := newTestRouter(t)

		testutil.When(t, "probing /healthz", func(t *testing.T) {
			rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/healthz"))

			testutil.Then(t, "it should report ok", func(t *testing.T) {
				testutil.AssertStatus(t, rr, http.StatusOK)
			})
		})

		testutil.When(t, "scraping /metrics", func(t *testing.T) {
			rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/metrics"))

			testutil.Then(t, "it should serve the Prometheus exposition", func(t *testing.T) {
				testutil.AssertStatus(t, rr, http.StatusOK)
			})
		})

		testutil.When(t, "sending a request without X-Request-ID", func(t *testing.T) {
			rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/healthz"))

			testutil.Then(t, "the response should carry a generated request id", func(t *testing.T) {
				require.NotEmpty(t, rr.Header().Get("X-Request-ID"))
			})
		})
	})
}
