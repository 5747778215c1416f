// Package feed — клиент удалённой ленты сущностей в стиле OData:
// фильтр/сортировка/проекция/усечение в query string, постраничная выдача
// через continuation-ссылку "@odata.nextLink".
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// ErrAggregation оборачивает сбой загрузки любой страницы: частичный
// результат отбрасывается целиком.
var ErrAggregation = errors.New("feed aggregation failed")

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
	}
}

// Query описывает один запрос к коллекции ленты.
type Query struct {
	Collection string
	Filter     string
	OrderBy    string
	Select     string
	Top        int
}

func (q Query) encode() string {
	v := url.Values{}
	if q.Filter != "" {
		v.Set("$filter", q.Filter)
	}
	if q.OrderBy != "" {
		v.Set("$orderby", q.OrderBy)
	}
	if q.Select != "" {
		v.Set("$select", q.Select)
	}
	if q.Top > 0 {
		v.Set("$top", strconv.Itoa(q.Top))
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

type page struct {
	Value    []json.RawMessage `json:"value"`
	NextLink string            `json:"@odata.nextLink"`
}

// Pager выдаёт страницы по одной; следующий запрос уходит по continuation-ссылке
// из предыдущего ответа.
type Pager struct {
	client *Client
	next   string
	done   bool
}

// Query начинает постраничный обход коллекции.
func (c *Client) Query(q Query) *Pager {
	return &Pager{
		client: c,
		next:   c.baseURL + "/" + q.Collection + q.encode(),
	}
}

// Next возвращает очередную страницу; more=false после последней.
func (p *Pager) Next(ctx context.Context) (rows []json.RawMessage, more bool, err error) {
	if p.done {
		return nil, false, nil
	}

	pg, err := p.client.fetchPage(ctx, p.next)
	if err != nil {
		return nil, false, err
	}

	if pg.NextLink == "" {
		p.done = true
	} else {
		p.next = pg.NextLink
	}
	return pg.Value, !p.done, nil
}

func (c *Client) fetchPage(ctx context.Context, pageURL string) (*page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("feed page %s: status %d: %s", pageURL, resp.StatusCode, body)
	}

	var pg page
	if err := json.NewDecoder(resp.Body).Decode(&pg); err != nil {
		return nil, fmt.Errorf("decode feed page: %w", err)
	}
	return &pg, nil
}

// FetchAll жадно собирает все страницы запроса в один срез. Любой сбой
// страницы прерывает агрегацию и отбрасывает уже накопленное.
func (c *Client) FetchAll(ctx context.Context, q Query) ([]json.RawMessage, error) {
	pager := c.Query(q)
	var out []json.RawMessage
	for {
		rows, more, err := pager.Next(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrAggregation, err)
		}
		out = append(out, rows...)
		if !more {
			return out, nil
		}
	}
}

// FetchAllAs собирает все страницы и декодирует каждую строку в T.
func FetchAllAs[T any](ctx context.Context, c *Client, q Query) ([]T, error) {
	raw, err := c.FetchAll(ctx, q)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(raw))
	for _, row := range raw {
		var v T
		if err := json.Unmarshal(row, &v); err != nil {
			return nil, fmt.Errorf("%w: decode row: %w", ErrAggregation, err)
		}
		out = append(out, v)
	}
	return out, nil
}
