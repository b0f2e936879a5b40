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

// TestListLinks_EncodesQueryParameters verifies listing options reach the URL
func TestListLinks_EncodesQueryParameters(t *testing.T) {
	// Arrange
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode(LinkList{
			Data:       []Bookmark{{ID: "abc123", Title: "Go Documentation"}},
			Pagination: Pagination{Page: 2, Limit: 5, Total: 11, TotalPages: 3, HasNext: true, HasPrev: true},
		})
	}))
	defer srv.Close()
	c := New(srv.URL)

	// Act
	list, err := c.ListLinks(context.Background(), ListOptions{Page: 2, Limit: 5, Search: "go", Sort: "title"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/api/links", gotPath)
	assert.Equal(t, "limit=5&page=2&search=go&sort=title", gotQuery)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "abc123", list.Data[0].ID)
	assert.True(t, list.Pagination.HasNext)
}

// TestListLinks_NoOptions_OmitsQueryString verifies zero options send nothing
func TestListLinks_NoOptions_OmitsQueryString(t *testing.T) {
	// Arrange
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode(LinkList{})
	}))
	defer srv.Close()
	c := New(srv.URL)

	// Act
	_, err := c.ListLinks(context.Background(), ListOptions{})

	// Assert
	require.NoError(t, err)
	assert.Empty(t, gotQuery)
}

// TestListFavorites_CallsFavoritesPath verifies the favorites route
func TestListFavorites_CallsFavoritesPath(t *testing.T) {
	// Arrange
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(LinkList{})
	}))
	defer srv.Close()
	c := New(srv.URL)

	// Act
	_, err := c.ListFavorites(context.Background(), ListOptions{})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/api/links/favorites", gotPath)
}

// TestCreateLink_SendsJSONBody verifies the create round-trip
func TestCreateLink_SendsJSONBody(t *testing.T) {
	// Arrange
	var gotMethod, gotContentType string
	var gotBody CreateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Bookmark{ID: "new123", Title: gotBody.Title, URL: gotBody.URL})
	}))
	defer srv.Close()
	c := New(srv.URL)

	// Act
	created, err := c.CreateLink(context.Background(), CreateRequest{
		Title: "Go Documentation",
		URL:   "https://go.dev/doc/",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "Go Documentation", gotBody.Title)
	assert.Equal(t, "new123", created.ID)
}

// TestUpdateLink_OmitsNilFields verifies partial updates only send set fields
func TestUpdateLink_OmitsNilFields(t *testing.T) {
	// Arrange
	var raw map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		json.NewEncoder(w).Encode(Bookmark{ID: "abc123"})
	}))
	defer srv.Close()
	c := New(srv.URL)
	title := "New Title"

	// Act
	_, err := c.UpdateLink(context.Background(), "abc123", UpdateRequest{Title: &title})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"title": "New Title"}, raw)
}

// TestDeleteLink_Success_NoError verifies delete ignores the body
func TestDeleteLink_Success_NoError(t *testing.T) {
	// Arrange
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		json.NewEncoder(w).Encode(map[string]string{"message": "Bookmark deleted successfully"})
	}))
	defer srv.Close()
	c := New(srv.URL)

	// Act & Assert
	assert.NoError(t, c.DeleteLink(context.Background(), "abc123"))
}

// TestToggleFavorite_CallsFavoriteSubresource verifies the toggle route
func TestToggleFavorite_CallsFavoriteSubresource(t *testing.T) {
	// Arrange
	var gotPath, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		json.NewEncoder(w).Encode(Bookmark{ID: "abc123", IsFavorite: true})
	}))
	defer srv.Close()
	c := New(srv.URL)

	// Act
	b, err := c.ToggleFavorite(context.Background(), "abc123")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/api/links/abc123/favorite", gotPath)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.True(t, b.IsFavorite)
}

// TestGetLink_NotFound_ReturnsAPIError verifies error payload decoding
func TestGetLink_NotFound_ReturnsAPIError(t *testing.T) {
	// Arrange
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Bookmark not found"})
	}))
	defer srv.Close()
	c := New(srv.URL)

	// Act
	_, err := c.GetLink(context.Background(), "missing")

	// Assert
	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Bookmark not found", apiErr.Message)
	assert.Equal(t, "markfy: Bookmark not found (status 404)", apiErr.Error())
}

// TestCreateLink_ValidationFailure_CarriesFieldDetails verifies details decode
func TestCreateLink_ValidationFailure_CarriesFieldDetails(t *testing.T) {
	// Arrange
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": "Invalid request body",
			"details": []map[string]string{
				{"field": "url", "message": "url is required"},
			},
		})
	}))
	defer srv.Close()
	c := New(srv.URL)

	// Act
	_, err := c.CreateLink(context.Background(), CreateRequest{Title: "No URL"})

	// Assert
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Len(t, apiErr.Details, 1)
	assert.Equal(t, "url", apiErr.Details[0].Field)
}

// TestGetLink_NonJSONErrorBody_FallsBackToStatusText verifies resilience to
// unexpected error payloads
func TestGetLink_NonJSONErrorBody_FallsBackToStatusText(t *testing.T) {
	// Arrange
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()
	c := New(srv.URL)

	// Act
	_, err := c.GetLink(context.Background(), "abc123")

	// Assert
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "Bad Gateway", apiErr.Message)
}

// TestNew_TrailingSlash_Trimmed verifies base URL normalization
func TestNew_TrailingSlash_Trimmed(t *testing.T) {
	// Arrange
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(Bookmark{})
	}))
	defer srv.Close()

	// Act
	c := New(srv.URL + "/")
	_, err := c.GetLink(context.Background(), "abc123")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/api/links/abc123", gotPath)
}
