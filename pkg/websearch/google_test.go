package websearch

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoogleSearcher_Pages(t *testing.T) {
	var mu sync.Mutex
	var starts []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/customsearch/v1", r.URL.Path)
		assert.Equal(t, "key-1", q.Get("key"))
		assert.Equal(t, "cx-1", q.Get("cx"))
		assert.Equal(t, "paracetamol price", q.Get("q"))

		mu.Lock()
		starts = append(starts, q.Get("start")+"/"+q.Get("num"))
		mu.Unlock()

		start, _ := strconv.Atoi(q.Get("start"))
		num, _ := strconv.Atoi(q.Get("num"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"items":[`)
		for i := 0; i < num; i++ {
			if i > 0 {
				fmt.Fprint(w, ",")
			}
			fmt.Fprintf(w, `{"title":"T%d","snippet":"line one\nline two","link":"https://shop/%d"}`, start+i, start+i)
		}
		fmt.Fprint(w, `]}`)
	}))
	defer srv.Close()

	g := NewGoogleSearcher(srv.URL, "key-1", "cx-1")
	results, err := g.Search(context.Background(), "paracetamol price", 15)
	require.NoError(t, err)
	require.Len(t, results, 15)
	assert.Equal(t, []string{"1/10", "11/5"}, starts)
	assert.Equal(t, "line one line two", results[0].Snippet)
	assert.Equal(t, "https://shop/15", results[14].Link)
}

func TestGoogleSearcher_StopsOnShortPage(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"items":[{"title":"only","snippet":"s","link":"https://a"}]}`)
	}))
	defer srv.Close()

	results, err := NewGoogleSearcher(srv.URL, "k", "cx").Search(context.Background(), "rare", 30)
	require.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, int32(1), calls.Load())
}

func TestGoogleSearcher_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"error":{"code":403,"message":"Daily limit exceeded"}}`)
	}))
	defer srv.Close()

	_, err := NewGoogleSearcher(srv.URL, "k", "cx").Search(context.Background(), "x", 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Daily limit exceeded")
}

func TestGoogleSearcher_Image(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "image", r.URL.Query().Get("searchType"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"items":[{"title":"box","link":"https://img/box.png"}]}`)
	}))
	defer srv.Close()

	link, err := NewGoogleSearcher(srv.URL, "k", "cx").Image(context.Background(), "Crocin tablet strip box")
	require.NoError(t, err)
	assert.Equal(t, "https://img/box.png", link)
}

func TestGoogleSearcher_NotConfigured(t *testing.T) {
	g := NewGoogleSearcher("", "", "")
	_, err := g.Search(context.Background(), "x", 5)
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = g.Image(context.Background(), "x")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
