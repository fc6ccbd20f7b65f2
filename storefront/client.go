// Package storefront renders catalog pages from the bakery API.
package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bakery-shop/models"
)

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Status: resp.StatusCode, Message: strings.TrimSpace(string(data))}
	}
	return data, nil
}

func (c *Client) getJSON(ctx context.Context, path string, dest interface{}) error {
	data, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

func (c *Client) getLines(ctx context.Context, path string) ([]string, error) {
	data, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	lines := []string{}
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

func (c *Client) Featured(ctx context.Context) ([]string, error) {
	return c.getLines(ctx, "/featured")
}

func (c *Client) BoxDecorations(ctx context.Context) ([]string, error) {
	return c.getLines(ctx, "/box-decorations")
}

func (c *Client) Products(ctx context.Context, q models.ProductQuery) ([]models.Product, error) {
	params := url.Values{}
	if q.Contains != "" {
		params.Set("contains", q.Contains)
	}
	if q.Sort != "" {
		params.Set("sort", q.Sort)
	}
	if q.Direction != "" {
		params.Set("direction", q.Direction)
	}

	path := "/products"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var products []models.Product
	if err := c.getJSON(ctx, path, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) Product(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	if err := c.getJSON(ctx, "/products/"+url.PathEscape(slug), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) Flavors(ctx context.Context, slug string) ([]string, error) {
	var flavors []string
	if err := c.getJSON(ctx, "/flavors/"+url.PathEscape(slug), &flavors); err != nil {
		return nil, err
	}
	return flavors, nil
}

func (c *Client) MacaronFlavors(ctx context.Context) ([]models.MacaronFlavor, error) {
	var flavors []models.MacaronFlavor
	if err := c.getJSON(ctx, "/macaron-flavors", &flavors); err != nil {
		return nil, err
	}
	return flavors, nil
}

func (c *Client) FAQ(ctx context.Context) ([]models.FAQEntry, error) {
	var entries []models.FAQEntry
	if err := c.getJSON(ctx, "/faq", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) CustomDescription(ctx context.Context, slug, flavor, box string) (string, error) {
	data, err := c.do(ctx, http.MethodPost, "/custom-description", models.CustomDescriptionRequest{
		Product: slug,
		Flavor:  flavor,
		Box:     box,
	})
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (c *Client) Contact(ctx context.Context, req models.ContactRequest) (string, error) {
	data, err := c.do(ctx, http.MethodPost, "/contact-us", req)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
