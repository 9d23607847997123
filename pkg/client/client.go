package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// Client talks to the SpiceTrade HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken installs the bearer token used on authenticated calls.
func (c *Client) SetToken(token string) {
	c.token = token
}

// APIError is a non-2xx response decoded from the {"error": ...} body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(encoded)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errBody struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr != nil || errBody.Error == "" {
			errBody.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: errBody.Error}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Signup registers an account and installs the returned token on the client.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*AuthResult, error) {
	var result AuthResult
	if err := c.do(ctx, http.MethodPost, "/api/signup", nil, req, &result); err != nil {
		return nil, err
	}
	c.token = result.Token
	return &result, nil
}

// Login authenticates and installs the returned token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	body := map[string]string{"email": email, "password": password}
	var result AuthResult
	if err := c.do(ctx, http.MethodPost, "/api/login", nil, body, &result); err != nil {
		return nil, err
	}
	c.token = result.Token
	return &result, nil
}

func (c *Client) ListStores(ctx context.Context) ([]User, error) {
	var stores []User
	err := c.do(ctx, http.MethodGet, "/api/stores", nil, nil, &stores)
	return stores, err
}

func (c *Client) GetUser(ctx context.Context, userID string) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/api/users/"+userID, nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (q AdQuery) values() url.Values {
	values := url.Values{}
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	if q.Category != "" {
		values.Set("category", q.Category)
	}
	if len(q.Tags) > 0 {
		values.Set("tags", strings.Join(q.Tags, ","))
	}
	if len(q.Stores) > 0 {
		values.Set("stores", strings.Join(q.Stores, ","))
	}
	if q.MinPrice != nil {
		values.Set("min_price", strconv.FormatFloat(*q.MinPrice, 'f', -1, 64))
	}
	if q.MaxPrice != nil {
		values.Set("max_price", strconv.FormatFloat(*q.MaxPrice, 'f', -1, 64))
	}
	if q.Sort != "" {
		values.Set("sort", q.Sort)
	}
	return values
}

func (c *Client) ListAds(ctx context.Context, query AdQuery) ([]Ad, error) {
	var ads []Ad
	err := c.do(ctx, http.MethodGet, "/api/ads", query.values(), nil, &ads)
	return ads, err
}

func (c *Client) SuggestAds(ctx context.Context, query string) ([]string, error) {
	values := url.Values{"query": {query}}
	var suggestions []string
	err := c.do(ctx, http.MethodGet, "/api/ads/suggestions", values, nil, &suggestions)
	return suggestions, err
}

func (c *Client) AdFacets(ctx context.Context, query AdQuery) (*FacetCounts, error) {
	var facets FacetCounts
	if err := c.do(ctx, http.MethodGet, "/api/ads/facets", query.values(), nil, &facets); err != nil {
		return nil, err
	}
	return &facets, nil
}

func (c *Client) GetAd(ctx context.Context, adID string) (*Ad, error) {
	var ad Ad
	if err := c.do(ctx, http.MethodGet, "/api/ads/"+adID, nil, nil, &ad); err != nil {
		return nil, err
	}
	return &ad, nil
}

func (c *Client) ListUserAds(ctx context.Context, userID string) ([]Ad, error) {
	var ads []Ad
	err := c.do(ctx, http.MethodGet, "/api/ads/user/"+userID, nil, nil, &ads)
	return ads, err
}

func (c *Client) CreateAd(ctx context.Context, ad NewAd) (*Ad, error) {
	var result struct {
		Ad Ad `json:"ad"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/ads", nil, ad, &result); err != nil {
		return nil, err
	}
	return &result.Ad, nil
}

func (c *Client) UpdateAd(ctx context.Context, adID string, patch map[string]interface{}) (*Ad, error) {
	var result struct {
		Ad Ad `json:"ad"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/ads/"+adID, nil, patch, &result); err != nil {
		return nil, err
	}
	return &result.Ad, nil
}

func (c *Client) DeleteAd(ctx context.Context, adID string) error {
	return c.do(ctx, http.MethodDelete, "/api/ads/"+adID, nil, nil, nil)
}

// StartConversation returns the id of the thread for the given triple,
// creating it when missing.
func (c *Client) StartConversation(ctx context.Context, buyerID, sellerID, adID string) (string, error) {
	body := map[string]string{"buyerId": buyerID, "sellerId": sellerID}
	if adID != "" {
		body["adId"] = adID
	}
	var result struct {
		ConversationID string `json:"conversationId"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/conversations", nil, body, &result); err != nil {
		return "", err
	}
	return result.ConversationID, nil
}

func (c *Client) ListConversations(ctx context.Context, userID string) ([]Conversation, error) {
	var conversations []Conversation
	err := c.do(ctx, http.MethodGet, "/api/conversations/"+userID, nil, nil, &conversations)
	return conversations, err
}

func (c *Client) ListMessages(ctx context.Context, conversationID string) ([]Message, error) {
	var messages []Message
	err := c.do(ctx, http.MethodGet, "/api/messages/"+conversationID, nil, nil, &messages)
	return messages, err
}

func (c *Client) SendMessage(ctx context.Context, conversationID, body string) error {
	payload := map[string]string{"conversationId": conversationID, "message": body}
	return c.do(ctx, http.MethodPost, "/api/messages", nil, payload, nil)
}

func (c *Client) MarkRead(ctx context.Context, conversationID string) error {
	return c.do(ctx, http.MethodPost, "/api/messages/mark-read/"+conversationID, nil, nil, nil)
}

func (c *Client) UnreadCount(ctx context.Context, userID string) (int, error) {
	var result struct {
		UnreadCount int `json:"unreadCount"`
	}
	err := c.do(ctx, http.MethodGet, "/api/messages/unread/"+userID, nil, nil, &result)
	return result.UnreadCount, err
}

func (c *Client) ListWishlist(ctx context.Context, userID string) ([]WishlistItem, error) {
	var items []WishlistItem
	err := c.do(ctx, http.MethodGet, "/api/wishlist/"+userID, nil, nil, &items)
	return items, err
}

func (c *Client) AddToWishlist(ctx context.Context, adID string) (string, error) {
	var result struct {
		WishlistID string `json:"wishlistId"`
	}
	body := map[string]string{"adId": adID}
	if err := c.do(ctx, http.MethodPost, "/api/wishlist", nil, body, &result); err != nil {
		return "", err
	}
	return result.WishlistID, nil
}

func (c *Client) RemoveFromWishlist(ctx context.Context, wishlistID string) error {
	return c.do(ctx, http.MethodDelete, "/api/wishlist/"+wishlistID, nil, nil, nil)
}

func (c *Client) CheckWishlist(ctx context.Context, adID string) (bool, string, error) {
	var result struct {
		IsWishlisted bool   `json:"isWishlisted"`
		WishlistID   string `json:"wishlistId"`
	}
	body := map[string]string{"adId": adID}
	if err := c.do(ctx, http.MethodPost, "/api/wishlist/check", nil, body, &result); err != nil {
		return false, "", err
	}
	return result.IsWishlisted, result.WishlistID, nil
}

func (c *Client) ListReviews(ctx context.Context, adID string) ([]Review, error) {
	var reviews []Review
	err := c.do(ctx, http.MethodGet, "/api/reviews/"+adID, nil, nil, &reviews)
	return reviews, err
}

func (c *Client) CreateReview(ctx context.Context, adID string, rating int, text string) (*Review, error) {
	body := map[string]interface{}{"adId": adID, "rating": rating, "text": text}
	var result struct {
		Review Review `json:"review"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/reviews", nil, body, &result); err != nil {
		return nil, err
	}
	return &result.Review, nil
}

func (c *Client) DeleteReview(ctx context.Context, reviewID string) error {
	return c.do(ctx, http.MethodDelete, "/api/reviews/"+reviewID, nil, nil, nil)
}

func (c *Client) CanReview(ctx context.Context, adID string) (bool, string, error) {
	var result struct {
		CanReview bool   `json:"canReview"`
		Reason    string `json:"reason"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/reviews/can-review/"+adID, nil, nil, &result); err != nil {
		return false, "", err
	}
	return result.CanReview, result.Reason, nil
}

func (c *Client) ReviewStats(ctx context.Context, adID string) (*ReviewStats, error) {
	var stats ReviewStats
	if err := c.do(ctx, http.MethodGet, "/api/reviews/stats/"+adID, nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
