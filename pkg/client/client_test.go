package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]Ad{})
	}))
	defer server.Close()

	c := New(server.URL, WithToken("tok-123"))
	_, err := c.ListAds(context.Background(), AdQuery{})
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClientEncodesCatalogQuery(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{}
		for key := range r.URL.Query() {
			gotQuery[key] = r.URL.Query().Get(key)
		}
		json.NewEncoder(w).Encode([]Ad{})
	}))
	defer server.Close()

	min, max := 100.0, 500.0
	c := New(server.URL)
	_, err := c.ListAds(context.Background(), AdQuery{
		Search:   "black pepper",
		Category: "Whole Spices",
		Tags:     []string{"organic", "bold"},
		Stores:   []string{"Malabar Spice Co"},
		MinPrice: &min,
		MaxPrice: &max,
		Sort:     "priceLowToHigh",
	})
	require.NoError(t, err)

	assert.Equal(t, "black pepper", gotQuery["search"])
	assert.Equal(t, "Whole Spices", gotQuery["category"])
	assert.Equal(t, "organic,bold", gotQuery["tags"])
	assert.Equal(t, "Malabar Spice Co", gotQuery["stores"])
	assert.Equal(t, "100", gotQuery["min_price"])
	assert.Equal(t, "500", gotQuery["max_price"])
	assert.Equal(t, "priceLowToHigh", gotQuery["sort"])
}

func TestClientDecodesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Listing not found"})
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.GetAd(context.Background(), "missing")
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Listing not found", apiErr.Message)
}

func TestLoginInstallsToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/login":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"user":    User{ID: "user-1", Email: "arjun@example.com"},
				"token":   "fresh-token",
			})
		case "/api/conversations/user-1":
			gotAuth = r.Header.Get("Authorization")
			json.NewEncoder(w).Encode([]Conversation{})
		}
	}))
	defer server.Close()

	c := New(server.URL)
	result, err := c.Login(context.Background(), "arjun@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "user-1", result.User.ID)

	_, err = c.ListConversations(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Bearer fresh-token", gotAuth)
}
