// Package client is a typed HTTP client for the medinfo REST API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

const DefaultBaseURL = "http://127.0.0.1:8000"

type Client struct {
	http *resty.Client
}

type Option func(*resty.Client)

func WithTimeout(d time.Duration) Option {
	return func(c *resty.Client) {
		c.SetTimeout(d)
	}
}

func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30*time.Second).
		SetHeader("Accept", "application/json")
	for _, opt := range opts {
		opt(rc)
	}
	return &Client{http: rc}
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c *Client) Register(ctx context.Context, username, password string) error {
	res, err := c.http.R().
		SetContext(ctx).
		SetBody(credentials{Username: username, Password: password}).
		Post("/users/register")
	return checkResponse("register", res, err, nil)
}

func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetBody(credentials{Username: username, Password: password}).
		Post("/users/login")

	var out LoginResult
	if err := checkResponse("login", res, err, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Search(ctx context.Context, query string) ([]Medicine, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("q", query).
		Get("/medicines/search")

	var out struct {
		Results []Medicine `json:"results"`
	}
	if err := checkResponse("search medicines", res, err, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// Generic looks up the generic name for a brand. An {"error": ...} body is
// returned as a tagged result on any status, not as an error.
func (c *Client) Generic(ctx context.Context, name string) (GenericResult, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("name", name).
		Get("/medicines/generic")
	if err != nil {
		return GenericResult{}, &transportError{op: "generic lookup", err: err}
	}

	var out GenericResult
	decodeErr := json.Unmarshal(res.Body(), &out)
	if decodeErr == nil && out.Error != "" {
		return GenericResult{Error: out.Error, Suggestion: out.Suggestion}, nil
	}
	if !res.IsSuccess() {
		return GenericResult{}, newAPIError(res.StatusCode(), res.Body())
	}
	if decodeErr != nil {
		return GenericResult{}, fmt.Errorf("generic lookup: decode response: %w", decodeErr)
	}
	return out, nil
}

type saveRequest struct {
	Username   string `json:"username"`
	MedicineID uint   `json:"medicine_id"`
}

func (c *Client) Save(ctx context.Context, username string, medicineID uint) error {
	res, err := c.http.R().
		SetContext(ctx).
		SetBody(saveRequest{Username: username, MedicineID: medicineID}).
		Post("/users/save")
	return checkResponse("save medicine", res, err, nil)
}

func (c *Client) Saved(ctx context.Context, username string) ([]Medicine, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetPathParam("username", username).
		Get("/users/saved/{username}")

	var out struct {
		Saved []Medicine `json:"saved"`
	}
	if err := checkResponse("saved medicines", res, err, &out); err != nil {
		return nil, err
	}
	return out.Saved, nil
}

func (c *Client) Categories(ctx context.Context) ([]string, error) {
	res, err := c.http.R().
		SetContext(ctx).
		Get("/essentials/")

	var out struct {
		Categories []string `json:"categories"`
	}
	if err := checkResponse("essential categories", res, err, &out); err != nil {
		return nil, err
	}
	return out.Categories, nil
}

func (c *Client) Essentials(ctx context.Context, category string) ([]Medicine, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetPathParam("category", category).
		Get("/essentials/{category}")

	var out struct {
		Medicines []Medicine `json:"medicines"`
	}
	if err := checkResponse("essentials", res, err, &out); err != nil {
		return nil, err
	}
	return out.Medicines, nil
}

func (c *Client) NearbyKendras(ctx context.Context, loc Location) ([]Kendra, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"lat": strconv.FormatFloat(loc.Lat, 'f', -1, 64),
			"lng": strconv.FormatFloat(loc.Lng, 'f', -1, 64),
		}).
		Get("/kendra/nearby")

	var out struct {
		Kendras []Kendra `json:"kendras"`
	}
	if err := checkResponse("nearby kendras", res, err, &out); err != nil {
		return nil, err
	}
	return out.Kendras, nil
}

func (c *Client) Chat(ctx context.Context, message string) (string, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"message": message}).
		Post("/assistant/chat")

	var out struct {
		Response string `json:"response"`
	}
	if err := checkResponse("assistant chat", res, err, &out); err != nil {
		return "", err
	}
	return out.Response, nil
}

type drugQuery struct {
	MedicineName string `json:"medicine_name"`
}

func (c *Client) PriceComparison(ctx context.Context, name string) (*PriceComparison, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetBody(drugQuery{MedicineName: name}).
		Post("/price-comparison")

	var out PriceComparison
	if err := checkResponse("price comparison", res, err, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DrugReport can take a while; the server runs several searches and model calls.
func (c *Client) DrugReport(ctx context.Context, name string) (*DrugReport, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetBody(drugQuery{MedicineName: name}).
		Post("/search")

	var out DrugReport
	if err := checkResponse("drug report", res, err, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) BlogPosts(ctx context.Context) ([]BlogPost, error) {
	res, err := c.http.R().
		SetContext(ctx).
		Get("/blog/")

	var out struct {
		Posts []BlogPost `json:"posts"`
	}
	if err := checkResponse("blog posts", res, err, &out); err != nil {
		return nil, err
	}
	return out.Posts, nil
}

// PublishPost returns the id of the new post.
func (c *Client) PublishPost(ctx context.Context, title, content string) (uint, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"title": title, "content": content}).
		Post("/blog/")

	var out struct {
		ID uint `json:"id"`
	}
	if err := checkResponse("publish post", res, err, &out); err != nil {
		return 0, err
	}
	return out.ID, nil
}

// checkResponse maps transport failures and non-2xx statuses to errors and
// decodes a successful body into out, if given. Missing fields stay zero.
func checkResponse(op string, res *resty.Response, err error, out interface{}) error {
	if err != nil {
		return &transportError{op: op, err: err}
	}
	if !res.IsSuccess() {
		return newAPIError(res.StatusCode(), res.Body())
	}
	if out == nil || len(res.Body()) == 0 {
		return nil
	}
	if err := json.Unmarshal(res.Body(), out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}
