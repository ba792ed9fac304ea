package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupServer(t *testing.T, handler http.Handler) *Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, 5*time.Second)
}

func TestClientHeaders(t *testing.T) {
	ctx := context.Background()

	t.Run("attaches the session token once set", func(t *testing.T) {
		var gotAuth string
		router := mux.NewRouter()
		router.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
		}).Methods("GET")
		client := setupServer(t, router)
		client.SetToken("secret-token")

		_, err := client.Get(ctx, "/ping", nil)

		require.NoError(t, err)
		assert.Equal(t, "Token secret-token", gotAuth)
	})

	t.Run("sends no authorization header without a token", func(t *testing.T) {
		var gotAuth string
		router := mux.NewRouter()
		router.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
		}).Methods("GET")
		client := setupServer(t, router)

		_, err := client.Get(ctx, "/ping", nil)

		require.NoError(t, err)
		assert.Empty(t, gotAuth)
	})

	t.Run("clear token removes the credential", func(t *testing.T) {
		var gotAuth string
		router := mux.NewRouter()
		router.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
		}).Methods("GET")
		client := setupServer(t, router)
		client.SetToken("secret-token")
		client.ClearToken()

		_, err := client.Get(ctx, "/ping", nil)

		require.NoError(t, err)
		assert.Empty(t, gotAuth)
	})

	t.Run("every request carries a request id", func(t *testing.T) {
		var gotIds []string
		router := mux.NewRouter()
		router.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
			gotIds = append(gotIds, r.Header.Get("X-Request-Id"))
		}).Methods("GET")
		client := setupServer(t, router)

		_, err := client.Get(ctx, "/ping", nil)
		require.NoError(t, err)
		_, err = client.Get(ctx, "/ping", nil)
		require.NoError(t, err)

		require.Len(t, gotIds, 2)
		for _, id := range gotIds {
			_, err := uuid.Parse(id)
			assert.NoError(t, err)
		}
		assert.NotEqual(t, gotIds[0], gotIds[1])
	})
}

func TestClientErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("non-2xx with detail decodes into Error", func(t *testing.T) {
		router := mux.NewRouter()
		router.HandleFunc("/thing", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"detail":"already taken"}`))
		}).Methods("POST")
		client := setupServer(t, router)

		_, err := client.Post(ctx, "/thing", nil)

		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
		assert.Equal(t, "already taken", apiErr.Detail)
		assert.Contains(t, apiErr.Error(), "already taken")
	})

	t.Run("non-2xx without a body still yields an Error", func(t *testing.T) {
		router := mux.NewRouter()
		router.HandleFunc("/thing", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}).Methods("GET")
		client := setupServer(t, router)

		_, err := client.Get(ctx, "/thing", nil)

		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
		assert.Empty(t, apiErr.Detail)
	})

	t.Run("transport failure is not an api.Error", func(t *testing.T) {
		client := NewClient("http://127.0.0.1:1", 200*time.Millisecond)

		_, err := client.Get(ctx, "/thing", nil)

		require.Error(t, err)
		var apiErr *Error
		assert.False(t, errors.As(err, &apiErr))
	})
}
