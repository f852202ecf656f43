package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pagedHandler serves a fixed dataset of numbered nodes, slicing pages
// by the "first" and "after" variables of each request, the way the
// real API drives cursor pagination.
func pagedHandler(t *testing.T, total int) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Variables map[string]any `json:"variables"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		first := int(req.Variables["first"].(float64))
		start := 0
		if after, ok := req.Variables["after"].(string); ok && after != "" {
			fmt.Sscanf(after, "cursor-%d", &start)
		}

		end := start + first
		if end > total {
			end = total
		}
		edges := make([]map[string]any, 0, end-start)
		for i := start; i < end; i++ {
			edges = append(edges, map[string]any{
				"cursor": fmt.Sprintf("cursor-%d", i+1),
				"node":   map[string]any{"id": fmt.Sprintf("node-%d", i)},
			})
		}

		resp := map[string]any{
			"data": map[string]any{
				"repository": map[string]any{
					"pullRequests": map[string]any{"edges": edges},
				},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}
}

// TestClient_Paginate_Terminates checks that pagination drains any
// finite dataset completely and that the returned count does not depend
// on the page size.
func TestClient_Paginate_Terminates(t *testing.T) {
	const total = 25

	for _, pageSize := range []int{1, 7, 10, 25, 100} {
		t.Run(fmt.Sprintf("pageSize=%d", pageSize), func(t *testing.T) {
			client, _ := setupTestClient(t, pagedHandler(t, total))

			nodes, err := client.Paginate(context.Background(), "query", map[string]any{"owner": "o", "name": "n"}, pageSize, "repository.pullRequests")

			require.NoError(t, err)
			require.Len(t, nodes, total)
			assert.Equal(t, "node-0", nodes[0]["id"])
			assert.Equal(t, fmt.Sprintf("node-%d", total-1), nodes[total-1]["id"])
		})
	}
}

func TestClient_Paginate_EmptyDataset(t *testing.T) {
	client, _ := setupTestClient(t, pagedHandler(t, 0))

	nodes, err := client.Paginate(context.Background(), "query", nil, 10, "repository.pullRequests")

	require.NoError(t, err)
	assert.Empty(t, nodes)
}

// TestClient_Paginate_MissingPath checks that a path segment absent
// from the response reads as an empty page, terminating pagination
// without an error.
func TestClient_Paginate_MissingPath(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":{"repository":null}}`)
	}
	client, _ := setupTestClient(t, http.HandlerFunc(handler))

	nodes, err := client.Paginate(context.Background(), "query", nil, 10, "repository.ref.target.history")

	require.NoError(t, err)
	assert.Empty(t, nodes)
}

// TestClient_Paginate_StopsOnEmptyCursor checks the second stop
// condition: a non-empty page whose last edge carries no continuation
// token ends the traversal.
func TestClient_Paginate_StopsOnEmptyCursor(t *testing.T) {
	var calls int
	handler := func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, `{"data":{"repository":{"issues":{"edges":[
			{"cursor":"", "node":{"id":"only"}}
		]}}}}`)
	}
	client, _ := setupTestClient(t, http.HandlerFunc(handler))

	nodes, err := client.Paginate(context.Background(), "query", nil, 10, "repository.issues")

	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, 1, calls, "an empty cursor must stop the loop after one page")
}

func TestClient_Paginate_PropagatesErrors(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"errors":[{"type":"NOT_FOUND","message":"no such repo"}]}`)
	}
	client, _ := setupTestClient(t, http.HandlerFunc(handler))

	_, err := client.Paginate(context.Background(), "query", nil, 10, "repository.issues")

	var perr *ProtocolError
	require.ErrorAs(t, err, &perr)
}

func TestEdgesAt(t *testing.T) {
	data := map[string]any{
		"repository": map[string]any{
			"pullRequests": map[string]any{
				"edges": []any{
					map[string]any{"cursor": "a", "node": map[string]any{}},
				},
			},
		},
	}

	testCases := []struct {
		name     string
		path     string
		expected int
	}{
		{"existing path", "repository.pullRequests", 1},
		{"missing leaf", "repository.issues", 0},
		{"missing root", "organization.pullRequests", 0},
		{"path into non-map", "repository.pullRequests.edges", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Len(t, edgesAt(data, tc.path), tc.expected)
		})
	}
}
