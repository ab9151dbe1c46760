package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Product is a single marketplace listing returned by the search API.
type Product struct {
	ASIN       string  `json:"asin"`
	Title      string  `json:"title"`
	Price      float64 `json:"price"`
	Currency   string  `json:"currency"`
	Rating     float64 `json:"rating"`
	NumRatings int     `json:"num_ratings"`
	URL        string  `json:"url"`
	Photo      string  `json:"photo"`
	IsPrime    bool    `json:"is_prime"`
	SellerID   string  `json:"seller_id,omitempty"`
}

// SellerProfile describes a marketplace seller.
type SellerProfile struct {
	SellerID     string  `json:"seller_id"`
	Name         string  `json:"name"`
	Rating       float64 `json:"rating"`
	RatingsTotal int     `json:"ratings_total"`
	About        string  `json:"about"`
	Address      string  `json:"address"`
}

// Client calls a RapidAPI-hosted marketplace search API. Results are cached
// in memory because the upstream quota is small.
type Client struct {
	apiKey  string
	apiHost string
	country string
	http    *http.Client
	cache   sync.Map
}

type cachedItem struct {
	data      interface{}
	expiresAt time.Time
}

func NewClient(apiKey, apiHost, country string) *Client {
	if country == "" {
		country = "IN"
	}
	return &Client{
		apiKey:  apiKey,
		apiHost: apiHost,
		country: country,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Enabled reports whether the client has credentials to call the API.
func (c *Client) Enabled() bool {
	return c.apiKey != "" && c.apiHost != ""
}

func (c *Client) getFromCache(key string) (interface{}, bool) {
	val, ok := c.cache.Load(key)
	if !ok {
		return nil, false
	}
	item := val.(cachedItem)
	if time.Now().After(item.expiresAt) {
		c.cache.Delete(key)
		return nil, false
	}
	return item.data, true
}

func (c *Client) setCache(key string, data interface{}, duration time.Duration) {
	c.cache.Store(key, cachedItem{data: data, expiresAt: time.Now().Add(duration)})
}

// SearchProducts runs a text search against the marketplace and returns up
// to limit listings.
func (c *Client) SearchProducts(ctx context.Context, query string, limit int) ([]Product, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("marketplace search is not configured")
	}
	if limit <= 0 {
		limit = 10
	}

	cacheKey := fmt.Sprintf("search:%s:%d", strings.ToLower(query), limit)
	if val, ok := c.getFromCache(cacheKey); ok {
		return val.([]Product), nil
	}

	params := url.Values{}
	params.Add("query", query)
	params.Add("country", c.country)
	params.Add("page", "1")

	body, err := c.get(ctx, "/search", params)
	if err != nil {
		return nil, err
	}

	var result struct {
		Data struct {
			Products []struct {
				ASIN        string `json:"asin"`
				Title       string `json:"product_title"`
				Price       string `json:"product_price"`
				StarRating  string `json:"product_star_rating"`
				NumRatings  int    `json:"product_num_ratings"`
				ProductURL  string `json:"product_url"`
				Photo       string `json:"product_photo"`
				IsPrime     bool   `json:"is_prime"`
				Currency    string `json:"currency"`
				SellerID    string `json:"seller_id"`
			} `json:"products"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	products := []Product{}
	for _, p := range result.Data.Products {
		if len(products) >= limit {
			break
		}
		products = append(products, Product{
			ASIN:       p.ASIN,
			Title:      p.Title,
			Price:      parsePrice(p.Price),
			Currency:   p.Currency,
			Rating:     parseFloat(p.StarRating),
			NumRatings: p.NumRatings,
			URL:        p.ProductURL,
			Photo:      p.Photo,
			IsPrime:    p.IsPrime,
			SellerID:   p.SellerID,
		})
	}

	c.setCache(cacheKey, products, 1*time.Hour)
	return products, nil
}

// GetSellerProfile fetches the seller page for a marketplace seller id.
func (c *Client) GetSellerProfile(ctx context.Context, sellerID string) (*SellerProfile, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("marketplace search is not configured")
	}

	cacheKey := "seller:" + sellerID
	if val, ok := c.getFromCache(cacheKey); ok {
		return val.(*SellerProfile), nil
	}

	params := url.Values{}
	params.Add("seller_id", sellerID)
	params.Add("country", c.country)

	body, err := c.get(ctx, "/seller-profile", params)
	if err != nil {
		return nil, err
	}

	var result struct {
		Data struct {
			SellerID     string `json:"seller_id"`
			Name         string `json:"name"`
			Rating       string `json:"rating"`
			RatingsTotal int    `json:"ratings_total"`
			About        string `json:"about"`
			Address      string `json:"business_address"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode seller response: %w", err)
	}

	profile := &SellerProfile{
		SellerID:     result.Data.SellerID,
		Name:         result.Data.Name,
		Rating:       parseFloat(result.Data.Rating),
		RatingsTotal: result.Data.RatingsTotal,
		About:        result.Data.About,
		Address:      result.Data.Address,
	}
	c.setCache(cacheKey, profile, 24*time.Hour)
	return profile, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	reqURL := "https://" + c.apiHost + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", c.apiHost)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("marketplace API returned %d", resp.StatusCode)
	}
	return body, nil
}

// parsePrice reads "₹1,299" / "$12.99" style price strings.
func parsePrice(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	v, _ := strconv.ParseFloat(b.String(), 64)
	return v
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v
}
