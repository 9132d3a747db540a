package trello_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cognito-assistant/pkg/trello"
)

func newTestServer(t *testing.T) (*httptest.Server, *map[string]int) {
	t.Helper()
	calls := map[string]int{}

	mux := http.NewServeMux()
	mux.HandleFunc("/members/me/boards", func(w http.ResponseWriter, r *http.Request) {
		calls["boards.list"]++
		if r.URL.Query().Get("key") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode([]map[string]string{
			{"id": "board-other", "name": "Groceries"},
		})
	})
	mux.HandleFunc("/boards", func(w http.ResponseWriter, r *http.Request) {
		calls["boards.create"]++
		json.NewEncoder(w).Encode(map[string]string{"id": "board-1", "name": r.URL.Query().Get("name")})
	})
	mux.HandleFunc("/boards/board-1/lists", func(w http.ResponseWriter, r *http.Request) {
		calls["lists.list"]++
		// One list pre-exists; the rest must be created.
		json.NewEncoder(w).Encode([]map[string]string{
			{"id": "list-today", "name": "🔥 Today"},
		})
	})
	mux.HandleFunc("/lists", func(w http.ResponseWriter, r *http.Request) {
		calls["lists.create"]++
		json.NewEncoder(w).Encode(map[string]string{
			"id": "list-" + r.URL.Query().Get("name"), "name": r.URL.Query().Get("name"),
		})
	})
	mux.HandleFunc("/boards/board-1/labels", func(w http.ResponseWriter, r *http.Request) {
		calls["labels.list"]++
		json.NewEncoder(w).Encode([]map[string]string{})
	})
	mux.HandleFunc("/labels", func(w http.ResponseWriter, r *http.Request) {
		calls["labels.create"]++
		json.NewEncoder(w).Encode(map[string]string{"id": "label-1"})
	})
	mux.HandleFunc("/cards", func(w http.ResponseWriter, r *http.Request) {
		calls["cards.create"]++
		if r.URL.Query().Get("idList") == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"id": "card-1", "url": "https://trello.test/c/card-1"})
	})
	mux.HandleFunc("/cards/card-1/idLabels", func(w http.ResponseWriter, r *http.Request) {
		calls["cards.label"]++
		json.NewEncoder(w).Encode(map[string]string{})
	})

	return httptest.NewServer(mux), &calls
}

func TestEnsureBoard_CreatesMissingBoardAndLists(t *testing.T) {
	ts, calls := newTestServer(t)
	defer ts.Close()

	client := trello.NewClient(ts.URL, "test-key", "test-token", "Cognito Task Queue")

	board, err := client.EnsureBoard(context.Background())
	if err != nil {
		t.Fatalf("EnsureBoard failed: %v", err)
	}
	if board.ID != "board-1" {
		t.Errorf("expected board-1, got %s", board.ID)
	}
	if len(board.Lists) != 5 {
		t.Fatalf("expected 5 lists, got %d", len(board.Lists))
	}
	if board.Lists[trello.ListKeyToday] != "list-today" {
		t.Errorf("existing list should be reused, got %s", board.Lists[trello.ListKeyToday])
	}
	if (*calls)["lists.create"] != 4 {
		t.Errorf("expected 4 list creations, got %d", (*calls)["lists.create"])
	}
}

func TestCreateCard_WithLabel(t *testing.T) {
	ts, calls := newTestServer(t)
	defer ts.Close()

	client := trello.NewClient(ts.URL, "test-key", "test-token", "Cognito Task Queue")

	card, err := client.CreateCard(context.Background(), trello.CreateCardRequest{
		ListID:     "list-today",
		BoardID:    "board-1",
		Name:       "🔴 [Critical] Review discharge summary",
		Desc:       "## Task Summary\n...",
		Due:        "2026-01-13T17:00:00Z",
		LabelName:  "Clinical",
		LabelColor: trello.DomainColors["Clinical"],
	})
	if err != nil {
		t.Fatalf("CreateCard failed: %v", err)
	}
	if card.ID != "card-1" || card.URL == "" {
		t.Errorf("unexpected card: %+v", card)
	}
	if (*calls)["labels.create"] != 1 || (*calls)["cards.label"] != 1 {
		t.Errorf("expected label to be created and attached: %v", *calls)
	}
}

func TestCreateCard_MissingList(t *testing.T) {
	ts, _ := newTestServer(t)
	defer ts.Close()

	client := trello.NewClient(ts.URL, "test-key", "test-token", "Cognito Task Queue")

	_, err := client.CreateCard(context.Background(), trello.CreateCardRequest{Name: "orphan"})
	if err == nil {
		t.Fatal("expected error for card without a list")
	}
}
