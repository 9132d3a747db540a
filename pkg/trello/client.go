package trello

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// DefaultBaseURL is the Trello REST API root.
const DefaultBaseURL = "https://api.trello.com/1"

// Client is the HTTP wrapper for the Trello REST API.
type Client struct {
	baseURL    string
	apiKey     string
	token      string
	boardName  string
	httpClient *http.Client
}

// NewClient creates a new Trello client. An empty baseURL uses the public
// API endpoint.
func NewClient(baseURL, apiKey, token, boardName string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		token:      token,
		boardName:  boardName,
		httpClient: &http.Client{},
	}
}

// authValues returns the auth query params required on every call.
func (c *Client) authValues() url.Values {
	v := url.Values{}
	v.Set("key", c.apiKey)
	v.Set("token", c.token)
	return v
}

// EnsureBoard finds the configured board by name, creating it and its five
// lists when missing, and returns the board with list IDs resolved.
func (c *Client) EnsureBoard(ctx context.Context) (Board, error) {
	boardID, err := c.getOrCreateBoard(ctx)
	if err != nil {
		return Board{}, err
	}

	lists, err := c.ensureLists(ctx, boardID)
	if err != nil {
		return Board{}, err
	}

	return Board{ID: boardID, Name: c.boardName, Lists: lists}, nil
}

func (c *Client) getOrCreateBoard(ctx context.Context) (string, error) {
	params := c.authValues()
	params.Set("fields", "name,id")

	var boards []boardInfo
	if err := c.do(ctx, http.MethodGet, "/members/me/boards", params, &boards); err != nil {
		return "", fmt.Errorf("failed to list boards: %w", err)
	}
	for _, b := range boards {
		if b.Name == c.boardName {
			return b.ID, nil
		}
	}

	create := c.authValues()
	create.Set("name", c.boardName)
	create.Set("defaultLists", "false")
	create.Set("prefs_background", "grey")

	var board boardInfo
	if err := c.do(ctx, http.MethodPost, "/boards", create, &board); err != nil {
		return "", fmt.Errorf("failed to create board %q: %w", c.boardName, err)
	}
	return board.ID, nil
}

// ensureLists makes sure all five lists exist, in order, and returns list
// key -> list ID.
func (c *Client) ensureLists(ctx context.Context, boardID string) (map[string]string, error) {
	params := c.authValues()
	params.Set("fields", "name,id")

	var existing []listInfo
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/boards/%s/lists", boardID), params, &existing); err != nil {
		return nil, fmt.Errorf("failed to list board lists: %w", err)
	}
	byName := make(map[string]string, len(existing))
	for _, lst := range existing {
		byName[lst.Name] = lst.ID
	}

	lists := make(map[string]string, len(listSpecs))
	position := "top"
	for _, spec := range listSpecs {
		if id, ok := byName[spec.Name]; ok {
			lists[spec.Key] = id
		} else {
			create := c.authValues()
			create.Set("name", spec.Name)
			create.Set("idBoard", boardID)
			create.Set("pos", position)

			var lst listInfo
			if err := c.do(ctx, http.MethodPost, "/lists", create, &lst); err != nil {
				return nil, fmt.Errorf("failed to create list %q: %w", spec.Name, err)
			}
			lists[spec.Key] = lst.ID
		}
		position = "bottom" // first list at top, rest below
	}
	return lists, nil
}

// CreateCard creates a card at the top of the given list and attaches the
// requested label when set. Label attachment failure does not fail the card.
func (c *Client) CreateCard(ctx context.Context, req CreateCardRequest) (*Card, error) {
	params := c.authValues()
	params.Set("idList", req.ListID)
	params.Set("name", req.Name)
	params.Set("desc", req.Desc)
	params.Set("pos", "top")
	if req.Due != "" {
		params.Set("due", req.Due)
	}

	var card Card
	if err := c.do(ctx, http.MethodPost, "/cards", params, &card); err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}

	if req.LabelName != "" && req.BoardID != "" {
		labelID, err := c.getOrCreateLabel(ctx, req.BoardID, req.LabelName, req.LabelColor)
		if err == nil {
			attach := c.authValues()
			attach.Set("value", labelID)
			_ = c.do(ctx, http.MethodPost, fmt.Sprintf("/cards/%s/idLabels", card.ID), attach, nil)
		}
	}

	return &card, nil
}

func (c *Client) getOrCreateLabel(ctx context.Context, boardID, name, color string) (string, error) {
	var labels []labelInfo
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/boards/%s/labels", boardID), c.authValues(), &labels); err != nil {
		return "", fmt.Errorf("failed to list labels: %w", err)
	}
	for _, label := range labels {
		if label.Name == name {
			return label.ID, nil
		}
	}

	create := c.authValues()
	create.Set("name", name)
	create.Set("color", color)
	create.Set("idBoard", boardID)

	var label labelInfo
	if err := c.do(ctx, http.MethodPost, "/labels", create, &label); err != nil {
		return "", fmt.Errorf("failed to create label %q: %w", name, err)
	}
	return label.ID, nil
}

// do performs one API call with auth params in the query string, decoding
// the JSON response into out when non-nil.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, out any) error {
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, method, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build trello request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call trello API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("trello API error %d: %s", resp.StatusCode, string(raw))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode trello response: %w", err)
	}
	return nil
}
