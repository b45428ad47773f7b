package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "s1", r.URL.Query().Get("store"))
		assert.Equal(t, "milk", r.URL.Query().Get("search"))

		json.NewEncoder(w).Encode([]Product{
			{Name: "Milk", Price: 2.49, Aisle: "Dairy", SellByUnit: "Each"},
			{Name: "Oat Milk", Price: 4.19, Aisle: "Dairy", SellByUnit: "Each"},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	products, err := client.Search(context.Background(), "s1", "milk")
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Milk", products[0].Name)
	assert.False(t, products[0].IsWeight)
}

func TestClientSearchNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	_, err := client.Search(context.Background(), "s1", "milk")
	assert.Error(t, err)
}

func TestClientSearchBadPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	_, err := client.Search(context.Background(), "s1", "milk")
	assert.Error(t, err)
}
