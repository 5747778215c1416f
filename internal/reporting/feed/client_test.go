package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	Name string `json:"Name"`
}

// лента из трёх страниц по две строки, связанных continuation-ссылками
func newPagedFeed(t *testing.T) (*httptest.Server, *int) {
	t.Helper()

	var requests int
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	mux.HandleFunc("/Products", func(w http.ResponseWriter, r *http.Request) {
		requests++
		page := r.URL.Query().Get("page")
		switch page {
		case "", "1":
			fmt.Fprintf(w, `{"value":[{"Name":"a"},{"Name":"b"}],"@odata.nextLink":"%s/Products?page=2"}`, srv.URL)
		case "2":
			fmt.Fprintf(w, `{"value":[{"Name":"c"},{"Name":"d"}],"@odata.nextLink":"%s/Products?page=3"}`, srv.URL)
		case "3":
			fmt.Fprint(w, `{"value":[{"Name":"e"},{"Name":"f"}]}`)
		default:
			http.NotFound(w, r)
		}
	})

	return srv, &requests
}

func TestFetchAllFollowsNextLinks(t *testing.T) {
	srv, requests := newPagedFeed(t)

	rows, err := FetchAllAs[row](context.Background(), NewClient(srv.URL), Query{Collection: "Products"})
	require.NoError(t, err)

	require.Len(t, rows, 6)
	var names []string
	for _, r := range rows {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, names)
	assert.Equal(t, 3, *requests)
}

func TestPagerStopsAfterLastPage(t *testing.T) {
	srv, _ := newPagedFeed(t)
	ctx := context.Background()

	pager := NewClient(srv.URL).Query(Query{Collection: "Products"})

	var pages int
	for {
		rows, more, err := pager.Next(ctx)
		require.NoError(t, err)
		pages++
		assert.Len(t, rows, 2)
		if !more {
			break
		}
	}
	assert.Equal(t, 3, pages)

	// после конца Next идемпотентен
	rows, more, err := pager.Next(ctx)
	require.NoError(t, err)
	assert.Nil(t, rows)
	assert.False(t, more)
}

// сбой на второй странице — агрегация падает целиком, без частичного результата
func TestFetchAllFailedPage(t *testing.T) {
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	mux.HandleFunc("/Products", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "2" {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		fmt.Fprintf(w, `{"value":[{"Name":"a"}],"@odata.nextLink":"%s/Products?page=2"}`, srv.URL)
	})

	rows, err := NewClient(srv.URL).FetchAll(context.Background(), Query{Collection: "Products"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAggregation)
	assert.Nil(t, rows)
}

func TestQueryEncoding(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, `{"value":[]}`)
	}))
	t.Cleanup(srv.Close)

	_, err := NewClient(srv.URL).FetchAll(context.Background(), Query{
		Collection: "Products",
		Filter:     "UnitPrice gt 20",
		OrderBy:    "UnitPrice desc",
		Select:     "ProductName,UnitPrice",
		Top:        5,
	})
	require.NoError(t, err)

	q, err := url.ParseQuery(gotQuery)
	require.NoError(t, err)
	assert.Equal(t, "UnitPrice gt 20", q.Get("$filter"))
	assert.Equal(t, "UnitPrice desc", q.Get("$orderby"))
	assert.Equal(t, "ProductName,UnitPrice", q.Get("$select"))
	assert.Equal(t, "5", q.Get("$top"))
}
