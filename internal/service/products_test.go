package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Almaash/community-app-admin/pkg/errors"
)

func TestProductService_ApproveSuccessFlag(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/product/approve/{id}", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"success":true,"message":"approved"}`))
	})
	srv := newBackend(t, r)
	client, endpoints := newClient(t, srv.URL)
	svc := NewProductService(client, endpoints, testLogger())

	require.NoError(t, svc.Approve(context.Background(), "p1"))
}

// Rejection responses flag success with `status` instead of `success`; both
// spellings must be honored.
func TestProductService_RejectStatusFlag(t *testing.T) {
	var gotRemarks string
	r := chi.NewRouter()
	r.Post("/api/product/reject/{id}", func(w http.ResponseWriter, req *http.Request) {
		var payload map[string]string
		require.NoError(t, json.NewDecoder(req.Body).Decode(&payload))
		gotRemarks = payload["rejectRemarks"]
		w.Write([]byte(`{"status":true}`))
	})
	srv := newBackend(t, r)
	client, endpoints := newClient(t, srv.URL)
	svc := NewProductService(client, endpoints, testLogger())

	require.NoError(t, svc.Reject(context.Background(), "p1", "blurry photos"))
	assert.Equal(t, "blurry photos", gotRemarks)
}

func TestProductService_RejectFailedStatusFlag(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/product/reject/{id}", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"status":false,"message":"product already rejected"}`))
	})
	srv := newBackend(t, r)
	client, endpoints := newClient(t, srv.URL)
	svc := NewProductService(client, endpoints, testLogger())

	err := svc.Reject(context.Background(), "p1", "dup")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "product already rejected")
}

func TestProductService_RejectRequiresRemarks(t *testing.T) {
	var hits atomic.Int32
	srv := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		hits.Add(1)
	}))
	client, endpoints := newClient(t, srv.URL)
	svc := NewProductService(client, endpoints, testLogger())

	err := svc.Reject(context.Background(), "p1", "  ")
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
	assert.Equal(t, int32(0), hits.Load())
}

func TestProductService_AddValidatesBeforeNetwork(t *testing.T) {
	var hits atomic.Int32
	srv := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		hits.Add(1)
	}))
	client, endpoints := newClient(t, srv.URL)
	svc := NewProductService(client, endpoints, testLogger())

	err := svc.Add(context.Background(), ProductInput{Name: "", Price: -1})
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
	assert.Equal(t, int32(0), hits.Load())
}

func TestProductService_ListBareArrayBody(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/product/products", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`[{"id":"p1","name":"lamp"},{"id":"p2","name":"rug"}]`))
	})
	srv := newBackend(t, r)
	client, endpoints := newClient(t, srv.URL)
	svc := NewProductService(client, endpoints, testLogger())

	products, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "rug", products[1].Name)
}
