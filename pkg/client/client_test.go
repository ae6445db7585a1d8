package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestSearch(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/medicines/search", r.URL.Path)
		assert.Equal(t, "para cet", r.URL.Query().Get("q"))
		writeJSON(w, 200, map[string]interface{}{
			"results": []map[string]interface{}{
				{"id": 1, "name": "Paracetamol", "generic": "Acetaminophen", "company": "BrandA", "price": 10},
			},
		})
	})

	results, err := c.Search(context.Background(), "para cet")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, Medicine{ID: 1, Name: "Paracetamol", Generic: "Acetaminophen", Company: "BrandA", Price: 10}, results[0])
}

func TestSearchMissingFieldsDecodeToEmpty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, map[string]interface{}{})
	})

	results, err := c.Search(context.Background(), "x")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestAPIErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		body interface{}
		want string
	}{
		{"detail", map[string]string{"detail": "Invalid credentials"}, "Invalid credentials"},
		{"message", map[string]string{"message": "Something broke"}, "Something broke"},
		{"neither", map[string]string{"foo": "bar"}, FallbackErrorMessage},
		{"non-string detail", map[string]interface{}{"detail": []string{"a"}}, FallbackErrorMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusUnauthorized, tt.body)
			})

			_, err := c.Login(context.Background(), "alice", "pw")
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
			assert.Equal(t, tt.want, apiErr.Error())
		})
	}
}

func TestAPIErrorNonJSONBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	})

	err := c.Register(context.Background(), "alice", "pw")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, FallbackErrorMessage, apiErr.Message)
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := New(url).Categories(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestGeneric(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Crocin", r.URL.Query().Get("name"))
			writeJSON(w, 200, map[string]interface{}{
				"generic": "Acetaminophen",
				"brands": []map[string]interface{}{
					{"id": 1, "name": "Paracetamol", "company": "BrandA", "price": 10},
				},
			})
		})

		res, err := c.Generic(context.Background(), "Crocin")
		require.NoError(t, err)
		assert.True(t, res.Found())
		assert.Equal(t, "Acetaminophen", res.Generic)
		assert.Equal(t, []Brand{{ID: 1, Name: "Paracetamol", Company: "BrandA", Price: 10}}, res.Brands)
	})

	t.Run("error body on 404 is a tagged result", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, 404, map[string]string{"error": "Medicine not found", "suggestion": "Paracetamol"})
		})

		res, err := c.Generic(context.Background(), "Paracetmol")
		require.NoError(t, err)
		assert.True(t, res.Failed())
		assert.Equal(t, "Medicine not found", res.Error)
		assert.Equal(t, "Paracetamol", res.Suggestion)
		assert.Empty(t, res.Brands)
	})

	t.Run("error body on 200 is a tagged result", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, 200, map[string]string{"error": "Not found"})
		})

		res, err := c.Generic(context.Background(), "x")
		require.NoError(t, err)
		assert.True(t, res.Failed())
	})

	t.Run("neither key is empty", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, 200, map[string]string{})
		})

		res, err := c.Generic(context.Background(), "x")
		require.NoError(t, err)
		assert.True(t, res.Empty())
	})

	t.Run("detail body is an api error", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, 404, map[string]string{"detail": "Medicine not found"})
		})

		_, err := c.Generic(context.Background(), "x")
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "Medicine not found", apiErr.Message)
	})
}

func TestSavedEscapesUsername(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/saved/a%20b%2Fc", r.URL.EscapedPath())
		writeJSON(w, 200, map[string]interface{}{"saved": []map[string]interface{}{{"id": 2, "name": "Ibuprofen"}}})
	})

	saved, err := c.Saved(context.Background(), "a b/c")
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, "Ibuprofen", saved[0].Name)
}

func TestSaveSendsBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users/save", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice", body["username"])
		assert.EqualValues(t, 3, body["medicine_id"])
		writeJSON(w, 200, map[string]string{"message": "Medicine saved"})
	})

	require.NoError(t, c.Save(context.Background(), "alice", 3))
}

func TestNearbyKendras(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "28.6139", r.URL.Query().Get("lat"))
		assert.Equal(t, "77.209", r.URL.Query().Get("lng"))
		writeJSON(w, 200, map[string]interface{}{
			"kendras": []map[string]interface{}{{"id": 1, "name": "Kendra 1", "lat": 28.6139, "lng": 77.209, "distance_km": 0}},
		})
	})

	kendras, err := c.NearbyKendras(context.Background(), Location{Lat: 28.6139, Lng: 77.2090})
	require.NoError(t, err)
	require.Len(t, kendras, 1)
	assert.Equal(t, "Kendra 1", kendras[0].Name)
}

func TestChat(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"message": "Hi"}, body)
		writeJSON(w, 200, map[string]string{"response": "AI says: You asked 'Hi'"})
	})

	reply, err := c.Chat(context.Background(), "Hi")
	require.NoError(t, err)
	assert.Equal(t, "AI says: You asked 'Hi'", reply)
}

func TestEssentialsAndBlog(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/essentials/":
			writeJSON(w, 200, map[string]interface{}{"categories": []string{"pain", "cold"}})
		case r.Method == http.MethodGet && r.URL.Path == "/essentials/pain":
			writeJSON(w, 200, map[string]interface{}{"medicines": []map[string]interface{}{{"id": 1, "name": "Paracetamol"}}})
		case r.Method == http.MethodGet && r.URL.Path == "/blog/":
			writeJSON(w, 200, map[string]interface{}{"posts": []map[string]interface{}{{"id": 1, "title": "T", "content": "C"}}})
		case r.Method == http.MethodPost && r.URL.Path == "/blog/":
			writeJSON(w, 200, map[string]interface{}{"message": "Post created", "id": 7})
		default:
			http.NotFound(w, r)
		}
	})
	ctx := context.Background()

	categories, err := c.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"pain", "cold"}, categories)

	meds, err := c.Essentials(ctx, "pain")
	require.NoError(t, err)
	require.Len(t, meds, 1)

	posts, err := c.BlogPosts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []BlogPost{{ID: 1, Title: "T", Content: "C"}}, posts)

	id, err := c.PublishPost(ctx, "T2", "C2")
	require.NoError(t, err)
	assert.EqualValues(t, 7, id)
}

func TestGenericResultTags(t *testing.T) {
	assert.True(t, GenericResult{}.Empty())
	assert.True(t, GenericResult{Generic: "X"}.Found())
	assert.True(t, GenericResult{Error: "e"}.Failed())
	assert.False(t, GenericResult{Error: "e", Generic: "X"}.Found())
}

func TestPriceComparison(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/price-comparison", r.URL.Path)
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Crocin", body["medicine_name"])
		writeJSON(w, 200, map[string]interface{}{
			"medicine_name": "Crocin",
			"prices":        []map[string]string{{"store": "1mg", "price": "Rs.18", "url": "https://1mg.com/crocin"}},
		})
	})

	res, err := c.PriceComparison(context.Background(), "Crocin")
	require.NoError(t, err)
	assert.Equal(t, "Crocin", res.MedicineName)
	assert.Equal(t, []PriceListing{{Store: "1mg", Price: "Rs.18", URL: "https://1mg.com/crocin"}}, res.Prices)
}

func TestDrugReport(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		if r.Header.Get("Content-Type") == "" {
			t.Error("missing content type")
		}
		writeJSON(w, 200, map[string]interface{}{
			"identified_medicine": "Crocin",
			"composition":         "Paracetamol 500mg",
			"generic_name":        "Paracetamol",
			"summary":             map[string][]string{"uses": {"Fever"}},
			"alternatives":        []map[string]string{{"brand_name": "Dolo 650", "manufacturer": "Micro Labs"}},
		})
	})

	res, err := c.DrugReport(context.Background(), "Crocin")
	require.NoError(t, err)
	assert.Equal(t, "Paracetamol 500mg", res.Composition)
	assert.Equal(t, []string{"Fever"}, res.Summary.Uses)
	assert.Empty(t, res.Summary.Warnings)
	assert.Equal(t, []DrugAlternative{{BrandName: "Dolo 650", Manufacturer: "Micro Labs"}}, res.Alternatives)

	unavailable := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 503, map[string]interface{}{"code": 503, "detail": "Web search is not configured on the server."})
	})
	_, err = unavailable.DrugReport(context.Background(), "Crocin")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 503, apiErr.Status)
	assert.Equal(t, "Web search is not configured on the server.", apiErr.Message)
}
